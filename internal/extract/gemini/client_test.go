package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmp-veiculos/contratos/internal/extract"
	"github.com/vmp-veiculos/contratos/internal/schema"
)

var testLocador = schema.Locador{
	Nome:          "CAIO ROBERTO DE SOUZA OLIVEIRA",
	Documento:     "461.227.128-92",
	TipoDocumento: "CPF",
	Telefone:      "(15) 996017089",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-test",
		Timeout: 5 * time.Second,
	}, testLocador, nil)
	return c, srv
}

func providerAnswer(t *testing.T, payload string) []byte {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": payload}}}},
		},
	}
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	return b
}

func sampleDocs() []extract.Document {
	return []extract.Document{
		{Filename: "cnh.jpg", MimeType: "image/jpeg", Data: []byte("fake-jpeg")},
		{Filename: "crlv.png", MimeType: "image/png", Data: []byte("fake-png")},
	}
}

func TestExtractSuccess(t *testing.T) {
	var gotReq generateRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-test:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write(providerAnswer(t, `{"cnh": {"nome": "JOÃO"}, "crlv": {"placa": "ABC1D23"}}`))
	})

	data, err := c.Extract(context.Background(), sampleDocs())
	require.NoError(t, err)

	assert.Equal(t, "JOÃO", data.CNH.Nome)
	assert.Equal(t, "ABC1D23", data.CRLV.Placa)
	assert.Equal(t, testLocador, data.Locador)
	assert.Empty(t, data.Extra.ValorTotal)

	// All documents travel in one logical request so the provider can
	// cross-reference fields across them.
	require.Len(t, gotReq.Contents, 1)
	parts := gotReq.Contents[0].Parts
	require.Len(t, parts, 3) // two images + prompt
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	assert.Equal(t, "image/png", parts[1].InlineData.MimeType)
	assert.NotEmpty(t, parts[2].Text)
}

func TestExtractStripsMarkdownFences(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(providerAnswer(t, "```json\n{\"cnh\": {\"nome\": \"ANA\"}}\n```"))
	})

	data, err := c.Extract(context.Background(), sampleDocs())
	require.NoError(t, err)
	assert.Equal(t, "ANA", data.CNH.Nome)
}

func TestExtractProviderErrorFoldsIntoExtractionError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Extract(context.Background(), sampleDocs())
	require.Error(t, err)
	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "provider", extractionErr.Stage)
}

func TestExtractMalformedOutputFoldsIntoExtractionError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(providerAnswer(t, `this is not json`))
	})

	_, err := c.Extract(context.Background(), sampleDocs())
	require.Error(t, err)
	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "normalize", extractionErr.Stage)
}

func TestExtractNoCandidates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := c.Extract(context.Background(), sampleDocs())
	require.Error(t, err)
	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "decode", extractionErr.Stage)
}

func TestExtractRejectsEmptyAndUnsupportedInput(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("provider must not be called")
	})

	_, err := c.Extract(context.Background(), nil)
	require.Error(t, err)

	_, err = c.Extract(context.Background(), []extract.Document{
		{Filename: "doc.tiff", MimeType: "image/tiff", Data: []byte("x")},
	})
	require.Error(t, err)

	_, err = c.Extract(context.Background(), []extract.Document{
		{Filename: "cnh.jpg", MimeType: "image/jpeg"},
	})
	require.Error(t, err)
}

func TestExtractTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: time.Second}, testLocador, nil)
	srv.Close() // connection refused from here on

	_, err := c.Extract(context.Background(), sampleDocs())
	require.Error(t, err)
	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "request", extractionErr.Stage)
}
