// Package server exposes the workflow to the operator's browser. It is a
// thin translation layer: every endpoint maps onto exactly one controller
// transition or one read of the current stage, and all state lives in the
// controller: one in-memory session, nothing durable.
package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmp-veiculos/contratos/constants"
	"github.com/vmp-veiculos/contratos/internal/contract"
	"github.com/vmp-veiculos/contratos/internal/export"
	"github.com/vmp-veiculos/contratos/internal/extract"
	"github.com/vmp-veiculos/contratos/internal/metrics"
	"github.com/vmp-veiculos/contratos/internal/workflow"
)

const manualFallbackMsg = "Erro ao processar documentos. Tente novamente ou use o preenchimento manual."

// Handler wires the workflow controller to HTTP.
type Handler struct {
	ctrl          *workflow.Controller
	metrics       *metrics.Metrics
	maxUploadSize int64
}

// NewHandler builds the operator-facing handler set.
func NewHandler(ctrl *workflow.Controller, m *metrics.Metrics, maxUploadSize int64) *Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = 20 << 20
	}
	return &Handler{ctrl: ctrl, metrics: m, maxUploadSize: maxUploadSize}
}

// Extract receives the document photos as multipart form files under
// "documents" and runs the extraction pipeline. While one submission is in
// flight further ones are rejected, not queued.
func (h *Handler) Extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}
	files := form.File["documents"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no documents provided"})
		return
	}

	docs := make([]extract.Document, 0, len(files))
	for _, fh := range files {
		mt := constants.NormalizeMediaType(fh.Header.Get("Content-Type"))
		if !constants.IsAllowedMediaType(mt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported media type for " + fh.Filename})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + fh.Filename})
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + fh.Filename})
			return
		}
		docs = append(docs, extract.Document{Filename: fh.Filename, MimeType: mt, Data: data})
	}

	start := time.Now()
	err = h.ctrl.Extract(c.Request.Context(), docs)
	h.metrics.ExtractionDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	switch {
	case err == nil:
		h.metrics.ExtractionsTotal.WithLabelValues("ok").Inc()
		h.session(c)
	case errors.Is(err, workflow.ErrExtractionInFlight), errors.Is(err, workflow.ErrWrongStage):
		h.metrics.ExtractionsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrAttemptSuperseded):
		h.metrics.ExtractionsTotal.WithLabelValues("superseded").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "submission superseded by manual entry"})
	default:
		h.metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    err.Error(),
			"fallback": manualFallbackMsg,
		})
	}
}

// Manual moves to verification over an all-empty record.
func (h *Handler) Manual(c *gin.Context) {
	if err := h.ctrl.ManualEntry(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.session(c)
}

// Session reports the current stage, the processing flag and, when a
// working copy or snapshot exists, its data.
func (h *Handler) Session(c *gin.Context) {
	h.session(c)
}

func (h *Handler) session(c *gin.Context) {
	resp := gin.H{
		"stage":      h.ctrl.Stage(),
		"processing": h.ctrl.Processing(),
	}
	if sess, err := h.ctrl.Verification(); err == nil {
		resp["data"] = sess.Data()
	} else if snap, err := h.ctrl.Rendered(); err == nil {
		resp["data"] = snap
	}
	c.JSON(http.StatusOK, resp)
}

type fieldEdit struct {
	Section string `json:"section" binding:"required"`
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
}

// SetField replaces the value of one named field in the working copy.
func (h *Handler) SetField(c *gin.Context) {
	var edit fieldEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.ctrl.Verification()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err := sess.Set(edit.Section, edit.Field, edit.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sess.Data()})
}

// Confirm finalizes the working copy. Validation failures come back per
// field with 422 so the operator fixes exactly what is wrong.
func (h *Handler) Confirm(c *gin.Context) {
	fieldErrs, err := h.ctrl.Confirm()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if len(fieldErrs) > 0 {
		h.metrics.ConfirmsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	h.metrics.ConfirmsTotal.WithLabelValues("ok").Inc()
	h.session(c)
}

// Cancel discards the working copy and returns to intake.
func (h *Handler) Cancel(c *gin.Context) {
	if err := h.ctrl.CancelVerification(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.session(c)
}

// Reopen re-enters verification from the rendered contract.
func (h *Handler) Reopen(c *gin.Context) {
	if err := h.ctrl.Reopen(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.session(c)
}

// Reset discards everything and returns to intake.
func (h *Handler) Reset(c *gin.Context) {
	h.ctrl.Reset()
	h.session(c)
}

// Contract returns the merged document as JSON for on-screen display and
// the browser's native print dialog.
func (h *Handler) Contract(c *gin.Context) {
	doc, ok := h.renderedDocument(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ContractPDF streams the paginated artifact named after the lessee.
func (h *Handler) ContractPDF(c *gin.Context) {
	doc, ok := h.renderedDocument(c)
	if !ok {
		return
	}
	snap, _ := h.ctrl.Rendered()

	pdfBytes, err := export.BuildPDF(doc)
	if err != nil {
		h.metrics.ExportsTotal.WithLabelValues("pdf", "error").Inc()
		h.exportFailure(c, err)
		return
	}
	h.metrics.ExportsTotal.WithLabelValues("pdf", "ok").Inc()

	c.Header("Content-Disposition", `attachment; filename="`+export.ArtifactName(snap.CNH.Nome)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ContractXLSX streams the contract data sheet.
func (h *Handler) ContractXLSX(c *gin.Context) {
	snap, err := h.ctrl.Rendered()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	xlsxBytes, err := export.BuildXLSX(snap)
	if err != nil {
		h.metrics.ExportsTotal.WithLabelValues("xlsx", "error").Inc()
		h.exportFailure(c, err)
		return
	}
	h.metrics.ExportsTotal.WithLabelValues("xlsx", "ok").Inc()

	c.Header("Content-Disposition", `attachment; filename="contrato.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}

func (h *Handler) renderedDocument(c *gin.Context) (contract.Document, bool) {
	snap, err := h.ctrl.Rendered()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return contract.Document{}, false
	}
	doc, err := contract.Render(snap)
	if err != nil {
		// An unresolved merge point is a defect in the template, not an
		// operator mistake.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return contract.Document{}, false
	}
	h.metrics.ContractsRendered.Inc()
	return doc, true
}

func (h *Handler) exportFailure(c *gin.Context, err error) {
	var exportErr *export.ExportError
	if errors.As(err, &exportErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    exportErr.Error(),
			"fallback": exportErr.Fallback,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
