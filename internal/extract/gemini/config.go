package gemini

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// Config for the Gemini client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL     string        // default https://generativelanguage.googleapis.com
	Model       string        // e.g. "gemini-2.0-flash"
	Temperature float32       // 0..2
	Timeout     time.Duration // http client timeout
}

// Client calls the Gemini generateContent endpoint and normalizes its
// answer into the canonical record. It implements extract.Extractor.
type Client struct {
	cfg        Config
	locador    schema.Locador
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a client. locador is the configured lessor identity
// stamped onto every normalized result.
func NewClient(cfg Config, locador schema.Locador, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		locador:    locador,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
