package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "PODBLOG_CONFIG"

// Config holds all runtime settings. Values come from an optional YAML
// file with environment variables taking precedence.
type Config struct {
	Port         string `yaml:"port"`
	GroqAPIKey   string `yaml:"groqApiKey"`
	TavilyAPIKey string `yaml:"tavilyApiKey"`
	STTProvider  string `yaml:"sttProvider"`
	WhisperModel string `yaml:"whisperModel"`
	ChatModel    string `yaml:"chatModel"`
	OutputDir    string `yaml:"outputDir"`
	TempDir      string `yaml:"tempDir"`
}

// UseSearch reports whether the research tool should be enabled.
func (c *Config) UseSearch() bool {
	return c.TavilyAPIKey != ""
}

// Load reads the optional YAML config file, applies env overrides, and
// validates required settings.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      "8080",
		OutputDir: "output",
		TempDir:   "temp",
	}

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[Config] cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required. Set it in the environment or a .env file")
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Port = getEnv("PORT", c.Port)
	c.GroqAPIKey = getEnv("GROQ_API_KEY", c.GroqAPIKey)
	c.TavilyAPIKey = getEnv("TAVILY_API_KEY", c.TavilyAPIKey)
	c.STTProvider = getEnv("STT_PROVIDER", c.STTProvider)
	c.WhisperModel = getEnv("WHISPER_MODEL", c.WhisperModel)
	c.ChatModel = getEnv("CHAT_MODEL", c.ChatModel)
	c.OutputDir = getEnv("OUTPUT_DIR", c.OutputDir)
	c.TempDir = getEnv("TEMP_DIR", c.TempDir)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
