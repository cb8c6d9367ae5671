package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all service configuration. Values come from an optional
// YAML file, overridden by environment variables, with defaults filled
// in by Load.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Vosk    VoskConfig    `yaml:"vosk"`
	Embed   EmbedConfig   `yaml:"embedding"`
	Paths   PathsConfig   `yaml:"paths"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type VoskConfig struct {
	ModelPath string `yaml:"model_path" validate:"required"`
}

type EmbedConfig struct {
	ModelPath     string `yaml:"model_path" validate:"required"`
	TokenizerPath string `yaml:"tokenizer_path" validate:"required"`
	LibraryPath   string `yaml:"library_path"`
}

type PathsConfig struct {
	Uploads string `yaml:"uploads" validate:"required"`
}

type LimitsConfig struct {
	MaxUploadMB int `yaml:"max_upload_mb" validate:"gt=0"`
	SummaryTopK int `yaml:"summary_top_k" validate:"gt=0"`
	KeywordTopN int `yaml:"keyword_top_n" validate:"gt=0"`
	MaxSegments int `yaml:"max_segments" validate:"gt=0"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config file at path if it exists, applies
// environment overrides, fills defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("VOSK_MODEL_PATH"); v != "" {
		c.Vosk.ModelPath = v
	}
	if v := os.Getenv("EMBED_MODEL_PATH"); v != "" {
		c.Embed.ModelPath = v
	}
	if v := os.Getenv("EMBED_TOKENIZER_PATH"); v != "" {
		c.Embed.TokenizerPath = v
	}
	if v := os.Getenv("ONNXRUNTIME_LIB_PATH"); v != "" {
		c.Embed.LibraryPath = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.Paths.Uploads = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.MaxUploadMB = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Vosk.ModelPath == "" {
		c.Vosk.ModelPath = "models/vosk-model"
	}
	if c.Embed.ModelPath == "" {
		c.Embed.ModelPath = "models/all-MiniLM-L6-v2.onnx"
	}
	if c.Embed.TokenizerPath == "" {
		c.Embed.TokenizerPath = "models/tokenizer.json"
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "uploads"
	}
	if c.Limits.MaxUploadMB == 0 {
		c.Limits.MaxUploadMB = 100
	}
	if c.Limits.SummaryTopK == 0 {
		c.Limits.SummaryTopK = 5
	}
	if c.Limits.KeywordTopN == 0 {
		c.Limits.KeywordTopN = 12
	}
	if c.Limits.MaxSegments == 0 {
		c.Limits.MaxSegments = 50
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
