package api

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"podblog/internal/content"
	"podblog/internal/jobs"
	"podblog/internal/pipeline"
	"podblog/internal/storage"
	"podblog/internal/utils"
)

// maxUploadBytes caps uploaded audio at 20 MiB.
const maxUploadBytes = 20 * 1024 * 1024

var allowedExts = []string{".mp3", ".wav", ".m4a", ".ogg"}

// Server exposes the job submission boundary over HTTP.
type Server struct {
	runner  *pipeline.Runner
	store   *jobs.Store
	output  *storage.Output
	tempDir string
}

// NewServer wires the HTTP boundary to the pipeline and stores.
func NewServer(runner *pipeline.Runner, store *jobs.Store, output *storage.Output, tempDir string) *Server {
	return &Server{runner: runner, store: store, output: output, tempDir: tempDir}
}

// RegisterRoutes attaches all endpoints to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.healthCheck)

	api := r.Group("/api")
	{
		api.POST("/upload", s.uploadAudio)
		api.GET("/status/:job_id", s.getJobStatus)
		api.GET("/download/:filename", s.downloadFile)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "podblog",
	})
}

// uploadAudio validates the upload, stores the audio, and submits a job.
// Processing happens in the background; the job id returns immediately.
func (s *Server) uploadAudio(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "file is required: "+err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		utils.Error(c, http.StatusBadRequest, "only audio files (.mp3, .wav, .m4a, .ogg) are supported")
		return
	}

	if file.Size > maxUploadBytes {
		utils.Error(c, http.StatusBadRequest, "file size exceeds the 20MB limit")
		return
	}

	kinds, err := content.ParseKinds(c.PostFormArray("content_types"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	model := c.PostForm("model")
	language := c.DefaultPostForm("language", "english")

	jobID := uuid.NewString()
	audioPath, err := storage.SaveUpload(file, s.tempDir, jobID)
	if err != nil {
		log.Printf("[API] Failed to save upload: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to save audio file")
		return
	}

	s.runner.Submit(jobID, audioPath, file.Filename, kinds, model, language)
	log.Printf("[API] Job %s submitted for %s", jobID, file.Filename)

	utils.Success(c, gin.H{
		"job_id":  jobID,
		"message": "Audio file uploaded and processing started",
	})
}

func (s *Server) getJobStatus(c *gin.Context) {
	id := c.Param("job_id")
	job, ok := s.store.Get(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "job ID "+id+" not found")
		return
	}

	resp := gin.H{
		"job_id":   job.ID,
		"status":   job.Status,
		"filename": job.SourceName,
	}
	if len(job.Files) > 0 {
		resp["files"] = job.Files
	}
	if job.Error != "" {
		resp["error"] = job.Error
	}
	utils.Success(c, resp)
}

func (s *Server) downloadFile(c *gin.Context) {
	filename := c.Param("filename")
	path, err := s.output.Path(filename)
	if err != nil {
		utils.Error(c, http.StatusNotFound, "file "+filename+" not found")
		return
	}
	c.FileAttachment(path, filename)
}
