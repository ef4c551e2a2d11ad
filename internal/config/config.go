package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "TribalBridge"
	AppVersion = "2.1.0"
)

// ModelIdentifier is recorded on every persisted translation so the
// dashboard can tell which engine generation produced it.
var ModelIdentifier = AppName + "-AI-v2.1"

type Config struct {
	Addr     string
	DBPath   string
	DataDir  string
	LogLevel string

	// Provider adapter credentials. An adapter whose credential or
	// endpoint is empty is treated as unconfigured and skipped.
	OllamaURL      string
	OllamaModel    string
	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string
	GoogleKey      string

	// ProxyURL routes outbound provider calls through an HTTP or SOCKS5
	// proxy. Empty means direct connections.
	ProxyURL string
}

func Load() Config {
	addr := os.Getenv("TB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("TB_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("TB_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "tribalbridge.db")
	}
	logLevel := os.Getenv("TB_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	ollamaModel := os.Getenv("TB_OLLAMA_MODEL")
	if ollamaModel == "" {
		ollamaModel = "mistral"
	}
	openAIModel := os.Getenv("TB_OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o-mini"
	}
	anthropicModel := os.Getenv("TB_ANTHROPIC_MODEL")
	if anthropicModel == "" {
		anthropicModel = "claude-3-5-haiku-latest"
	}

	return Config{
		Addr:           addr,
		DBPath:         filepath.Clean(path),
		DataDir:        filepath.Clean(dataDir),
		LogLevel:       logLevel,
		OllamaURL:      os.Getenv("TB_OLLAMA_URL"),
		OllamaModel:    ollamaModel,
		OpenAIKey:      os.Getenv("TB_OPENAI_API_KEY"),
		OpenAIModel:    openAIModel,
		AnthropicKey:   os.Getenv("TB_ANTHROPIC_API_KEY"),
		AnthropicModel: anthropicModel,
		GoogleKey:      os.Getenv("TB_GOOGLE_TRANSLATE_API_KEY"),
		ProxyURL:       os.Getenv("TB_PROXY_URL"),
	}
}
