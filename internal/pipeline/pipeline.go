package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"podblog/internal/content"
	"podblog/internal/jobs"
	"podblog/internal/llm"
	"podblog/internal/storage"
	"podblog/internal/transcribe"
)

// defaultJobTimeout bounds one whole pipeline run so a stuck service call
// surfaces as an error instead of a hang.
const defaultJobTimeout = 15 * time.Minute

// ModelFactory builds a model handle for the name the caller requested.
type ModelFactory func(model string) llm.Model

// Runner executes the transcribe -> normalize -> generate -> persist
// pipeline for each submitted job.
type Runner struct {
	transcriber transcribe.Provider
	newModel    ModelFactory
	searchTool  *llm.Tool // nil disables research during blog generation
	store       *jobs.Store
	output      *storage.Output
	timeout     time.Duration
}

// NewRunner wires the pipeline's collaborators.
func NewRunner(transcriber transcribe.Provider, newModel ModelFactory, searchTool *llm.Tool, store *jobs.Store, output *storage.Output) *Runner {
	return &Runner{
		transcriber: transcriber,
		newModel:    newModel,
		searchTool:  searchTool,
		store:       store,
		output:      output,
		timeout:     defaultJobTimeout,
	}
}

// Submit registers a job and schedules its pipeline in the background.
// It returns the job id immediately; callers observe progress through the
// job store. jobID may be empty, in which case one is assigned.
func (r *Runner) Submit(jobID, audioPath, sourceName string, kinds []content.Kind, model, language string) string {
	if jobID == "" {
		jobID = uuid.NewString()
	}
	r.store.Create(jobID, audioPath, sourceName, kinds)
	go r.run(jobID, audioPath, sourceName, kinds, model, language)
	return jobID
}

// generationOrder is the fixed execution sequence: blog first so its
// dependents have input, then the remaining kinds.
var generationOrder = []content.Kind{
	content.KindBlog,
	content.KindSEO,
	content.KindFAQ,
	content.KindSocial,
	content.KindNewsletter,
	content.KindQuotes,
}

func (r *Runner) run(jobID, audioPath, sourceName string, kinds []content.Kind, model, language string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	log.Printf("[Pipeline] Job %s: transcribing %s", jobID, audioPath)
	result, err := r.transcriber.Transcribe(ctx, audioPath, language)
	if err != nil {
		log.Printf("[Pipeline] Job %s failed: %v", jobID, err)
		r.store.Fail(jobID, err.Error())
		return
	}
	transcript := result.Transcript

	base := jobID + "_" + baseName(sourceName)
	filename, err := r.output.Save(transcript, base+"_transcript", content.FormatMarkdown)
	if err != nil {
		log.Printf("[Pipeline] Job %s failed: %v", jobID, err)
		r.store.Fail(jobID, err.Error())
		return
	}
	r.store.AddFile(jobID, "transcript", filename)

	requested := make(map[content.Kind]bool, len(kinds))
	for _, kind := range kinds {
		requested[kind] = true
	}

	gen := content.NewGenerator(r.newModel(model), r.searchTool)
	blogBody := ""

	for _, kind := range generationOrder {
		if !requested[kind] {
			continue
		}

		var artifact *content.Artifact
		switch kind {
		case content.KindBlog:
			artifact = gen.Blog(ctx, transcript)
			if !artifact.Failed() {
				blogBody = artifact.Content
			}
		case content.KindSEO, content.KindSocial, content.KindNewsletter:
			if blogBody == "" {
				// No valid blog input: silently absent from files,
				// matching the reference behavior.
				log.Printf("[Pipeline] Job %s: skipping %s, no blog body", jobID, kind)
				continue
			}
			switch kind {
			case content.KindSEO:
				artifact = gen.SEO(ctx, blogBody)
			case content.KindSocial:
				artifact = gen.Social(ctx, blogBody)
			default:
				artifact = gen.Newsletter(ctx, blogBody)
			}
		case content.KindFAQ:
			artifact = gen.FAQ(ctx, transcript)
		case content.KindQuotes:
			artifact = gen.Quotes(ctx, transcript)
		}

		if artifact.Failed() {
			log.Printf("[Pipeline] Job %s: %s generation failed: %s", jobID, kind, artifact.Err)
		}

		name := fmt.Sprintf("%s_%s", base, kind)
		filename, err := r.output.Save(artifact.Content, name, artifact.Format)
		if err != nil {
			log.Printf("[Pipeline] Job %s failed: %v", jobID, err)
			r.store.Fail(jobID, err.Error())
			return
		}
		r.store.AddFile(jobID, string(kind), filename)
	}

	r.store.Complete(jobID)
	log.Printf("[Pipeline] Job %s completed", jobID)
}

func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
