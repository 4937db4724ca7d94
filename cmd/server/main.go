package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"podblog/internal/api"
	"podblog/internal/config"
	"podblog/internal/jobs"
	"podblog/internal/llm"
	"podblog/internal/pipeline"
	"podblog/internal/search"
	"podblog/internal/storage"
	"podblog/internal/transcribe"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	transcriber, err := transcribe.NewProvider(transcribe.ProviderConfig{
		Provider: cfg.STTProvider,
		APIKey:   cfg.GroqAPIKey,
		Model:    cfg.WhisperModel,
	})
	if err != nil {
		log.Fatalf("Failed to create STT provider: %v", err)
	}

	newModel := func(model string) llm.Model {
		if model == "" {
			model = cfg.ChatModel
		}
		return llm.NewClient(cfg.GroqAPIKey, llm.GroqBaseURL, model)
	}

	var searchTool *llm.Tool
	if cfg.UseSearch() {
		tool := search.NewTavily(cfg.TavilyAPIKey).Tool()
		searchTool = &tool
		log.Println("Web research enabled for blog generation")
	} else {
		log.Println("TAVILY_API_KEY not set, blog generation will rely on transcripts only")
	}

	output, err := storage.NewOutput(cfg.OutputDir)
	if err != nil {
		log.Fatalf("Failed to create output store: %v", err)
	}

	store := jobs.NewStore()
	runner := pipeline.NewRunner(transcriber, newModel, searchTool, store, output)

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(corsMiddleware())

	server := api.NewServer(runner, store, output, cfg.TempDir)
	server.RegisterRoutes(r)

	log.Printf("podblog backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
