package jobs

import (
	"fmt"
	"sync"
	"testing"

	"podblog/internal/content"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	s.Create("job-1", "/tmp/audio.mp3", "audio.mp3", []content.Kind{content.KindBlog})

	job, ok := s.Get("job-1")
	if !ok {
		t.Fatal("job not found after create")
	}
	if job.Status != StatusProcessing {
		t.Fatalf("status = %s, want processing", job.Status)
	}

	s.AddFile("job-1", "blog", "job-1_audio_blog.md")
	s.Complete("job-1")

	job, _ = s.Get("job-1")
	if job.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", job.Status)
	}
	if job.Files["blog"] != "job-1_audio_blog.md" {
		t.Fatalf("files = %v", job.Files)
	}
}

func TestStoreTerminalStatusIsSticky(t *testing.T) {
	s := NewStore()
	s.Create("job-1", "/tmp/a.mp3", "a.mp3", nil)
	s.Fail("job-1", "transcription failed")

	s.Complete("job-1")
	s.AddFile("job-1", "blog", "late.md")

	job, _ := s.Get("job-1")
	if job.Status != StatusFailed {
		t.Fatalf("status = %s, want failed to stick", job.Status)
	}
	if job.Error != "transcription failed" {
		t.Fatalf("error = %q", job.Error)
	}
	if len(job.Files) != 0 {
		t.Fatalf("files recorded after terminal state: %v", job.Files)
	}
}

func TestStoreGetReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Create("job-1", "/tmp/a.mp3", "a.mp3", []content.Kind{content.KindBlog})

	job, _ := s.Get("job-1")
	job.Files["blog"] = "tampered.md"
	job.Kinds[0] = content.KindQuotes

	fresh, _ := s.Get("job-1")
	if len(fresh.Files) != 0 {
		t.Fatalf("store mutated through snapshot: %v", fresh.Files)
	}
	if fresh.Kinds[0] != content.KindBlog {
		t.Fatalf("kinds mutated through snapshot: %v", fresh.Kinds)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("job-%d", i)
			s.Create(id, "/tmp/a.mp3", "a.mp3", nil)
			s.AddFile(id, "transcript", id+"_transcript.md")
			s.Complete(id)
			if _, ok := s.Get(id); !ok {
				t.Errorf("job %s missing", id)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("job-%d", i)
		job, ok := s.Get(id)
		if !ok || job.Status != StatusCompleted {
			t.Fatalf("job %s = %+v", id, job)
		}
	}
}

func TestStoreUnknownJob(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected miss for unknown job")
	}
	// Mutations on unknown ids must not panic.
	s.AddFile("missing", "blog", "x.md")
	s.Complete("missing")
	s.Fail("missing", "boom")
}
