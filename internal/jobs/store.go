package jobs

import (
	"sync"
	"time"

	"podblog/internal/content"
)

// Store is the process-wide job map. One pipeline task writes a given
// job; status reads may happen concurrently from the request boundary.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*Job)}
}

// Create registers a new job in processing state. It runs before the
// pipeline starts so a status query right after submission is well-defined.
func (s *Store) Create(id, audioPath, sourceName string, kinds []content.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = &Job{
		ID:         id,
		Status:     StatusProcessing,
		Kinds:      append([]content.Kind(nil), kinds...),
		AudioPath:  audioPath,
		SourceName: sourceName,
		Files:      make(map[string]string),
		CreatedAt:  time.Now(),
	}
}

// AddFile records one persisted output under its artifact slot. No-op for
// unknown or already-terminal jobs.
func (s *Store) AddFile(id, slot, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.terminal() {
		return
	}
	job.Files[slot] = filename
}

// Complete moves a job to its terminal completed state. No-op once terminal.
func (s *Store) Complete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.terminal() {
		return
	}
	job.Status = StatusCompleted
}

// Fail moves a job to its terminal failed state with the captured error.
// No-op once terminal.
func (s *Store) Fail(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.terminal() {
		return
	}
	job.Status = StatusFailed
	job.Error = message
}

// Get returns a snapshot copy of a job, so callers never hold a live
// reference into the store.
func (s *Store) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	snapshot := *job
	snapshot.Kinds = append([]content.Kind(nil), job.Kinds...)
	snapshot.Files = make(map[string]string, len(job.Files))
	for k, v := range job.Files {
		snapshot.Files[k] = v
	}
	return snapshot, true
}
