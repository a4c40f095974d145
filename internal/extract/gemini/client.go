package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmp-veiculos/contratos/constants"
	"github.com/vmp-veiculos/contratos/internal/extract"
	"github.com/vmp-veiculos/contratos/internal/schema"
)

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      float32 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract sends every document in one generateContent call so the model can
// cross-reference fields across them, then validates and normalizes the
// answer. Any failure comes back as an *extract.ExtractionError; the caller
// surfaces one message and offers manual entry.
func (c *Client) Extract(ctx context.Context, docs []extract.Document) (schema.ExtractedData, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(docs) == 0 {
		return schema.ExtractedData{}, extract.NewExtractionError("request", fmt.Errorf("no documents"))
	}

	parts := make([]part, 0, len(docs)+1)
	var totalBytes int
	for _, d := range docs {
		mt := constants.NormalizeMediaType(d.MimeType)
		if !constants.IsAllowedMediaType(mt) {
			return schema.ExtractedData{}, extract.NewExtractionError("request",
				fmt.Errorf("unsupported media type %q for %s", d.MimeType, d.Filename))
		}
		if len(d.Data) == 0 {
			return schema.ExtractedData{}, extract.NewExtractionError("request",
				fmt.Errorf("empty payload for %s", d.Filename))
		}
		totalBytes += len(d.Data)
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: mt,
			Data:     base64.StdEncoding.EncodeToString(d.Data),
		}})
	}
	parts = append(parts, part{Text: buildPrompt()})

	c.log.Info("extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"documents", len(docs),
		"payload_bytes", totalBytes,
	)

	body := generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:      c.cfg.Temperature,
			ResponseMimeType: "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return schema.ExtractedData{}, err
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		c.log.Error("extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return schema.ExtractedData{}, extract.NewExtractionError("decode",
			fmt.Errorf("decode provider response: %w", err))
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		c.log.Error("extract.no_candidates",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return schema.ExtractedData{}, extract.NewExtractionError("decode",
			fmt.Errorf("no candidates in provider response"))
	}

	payload := stripFences(gr.Candidates[0].Content.Parts[0].Text)

	data, dropped, err := extract.NormalizeProviderOutput([]byte(payload), c.locador)
	if err != nil {
		c.log.Error("extract.normalize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return schema.ExtractedData{}, extract.NewExtractionError("normalize", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("extract.normalize_sanitized", "req_id", rid, "dropped", dropped)
	}

	c.log.Info("extract.ok",
		"req_id", rid,
		"lessee", data.CNH.Nome,
		"plate", data.CRLV.Placa,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, extract.NewExtractionError("request", fmt.Errorf("marshal request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, extract.NewExtractionError("request", err)
	}
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, extract.NewExtractionError("request", fmt.Errorf("provider http error: %w", err))
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("provider response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, extract.NewExtractionError("provider", fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, extract.NewExtractionError("provider",
			fmt.Errorf("provider status %d: %s", resp.StatusCode, buf.String()))
	}
	return buf.Bytes(), nil
}

// stripFences removes a markdown code fence some models wrap around JSON
// even when asked for a raw JSON response.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
