// Package workflow is the finite state machine coordinating the three
// stages of the pipeline: document intake, field verification and contract
// rendering. The controller is the single source of truth for the current
// stage and the current data snapshot; every transition goes through it.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vmp-veiculos/contratos/internal/extract"
	"github.com/vmp-veiculos/contratos/internal/schema"
	"github.com/vmp-veiculos/contratos/internal/verify"
)

// Stage is the current workflow state.
type Stage string

const (
	StageIntake Stage = "INTAKE"
	StageVerify Stage = "VERIFY"
	StageRender Stage = "RENDER"
)

var (
	// ErrExtractionInFlight rejects a submission while another one is
	// outstanding. Submissions are rejected, never queued.
	ErrExtractionInFlight = errors.New("an extraction is already in flight")

	// ErrAttemptSuperseded marks an extraction whose result arrived after
	// the operator moved on (manual entry or reset). The result is
	// discarded, not applied.
	ErrAttemptSuperseded = errors.New("extraction attempt superseded by operator")

	// ErrWrongStage rejects an operation that is not legal in the current
	// stage.
	ErrWrongStage = errors.New("operation not valid in current stage")
)

// Controller holds the session state. Invariants it maintains:
// session is non-nil exactly in VERIFY, the finalized snapshot is valid
// exactly in RENDER, and neither is ever reachable from the other stage,
// so render code can never observe an absent snapshot.
type Controller struct {
	extractor extract.Extractor
	locador   schema.Locador
	log       *slog.Logger

	mu       sync.Mutex
	stage    Stage
	session  *verify.Session
	snapshot schema.ExtractedData
	inFlight bool
	epoch    uint64
}

// New builds a controller starting in INTAKE.
func New(extractor extract.Extractor, locador schema.Locador, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		extractor: extractor,
		locador:   locador,
		log:       logger,
		stage:     StageIntake,
	}
}

// Stage returns the current workflow stage.
func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Processing reports whether an extraction call is outstanding.
func (c *Controller) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Extract runs the adapter over the submitted documents and, on success,
// advances INTAKE -> VERIFY with the extracted record as the working copy.
// On failure the controller stays in INTAKE with no snapshot and the error
// is surfaced so the operator can retry or fall back to manual entry.
//
// The provider call happens outside the controller lock; only the
// transition is serialized.
func (c *Controller) Extract(ctx context.Context, docs []extract.Document) error {
	c.mu.Lock()
	if c.stage != StageIntake {
		c.mu.Unlock()
		return ErrWrongStage
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrExtractionInFlight
	}
	c.inFlight = true
	attempt := c.epoch
	c.mu.Unlock()

	data, err := c.extractor.Extract(ctx, docs)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != attempt {
		// Operator already chose manual entry or reset the session; the
		// network call was not cancelled, its result just stops mattering.
		c.log.Info("workflow.extract.superseded", "stage", c.stage)
		return ErrAttemptSuperseded
	}
	c.inFlight = false

	if err != nil {
		c.log.Warn("workflow.extract.failed", "error", err)
		return err
	}

	c.session = verify.NewSession(data)
	c.stage = StageVerify
	c.log.Info("workflow.transition", "from", StageIntake, "to", StageVerify, "trigger", "extraction")
	return nil
}

// ManualEntry bypasses extraction: INTAKE -> VERIFY over an all-empty
// record (the configured lessor identity is retained). Choosing it while
// an extraction is outstanding abandons that attempt by disregard.
func (c *Controller) ManualEntry() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageIntake {
		return ErrWrongStage
	}
	c.epoch++
	c.inFlight = false
	c.session = verify.NewSession(schema.NewEmpty(c.locador))
	c.stage = StageVerify
	c.log.Info("workflow.transition", "from", StageIntake, "to", StageVerify, "trigger", "manual")
	return nil
}

// Verification hands out the working session. Only legal in VERIFY, so no
// caller ever holds a session without data behind it.
func (c *Controller) Verification() (*verify.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageVerify {
		return nil, ErrWrongStage
	}
	return c.session, nil
}

// Confirm finalizes the working copy: VERIFY -> RENDER when validation
// passes, otherwise the per-field failures are returned and the stage does
// not move.
func (c *Controller) Confirm() ([]verify.FieldError, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageVerify {
		return nil, ErrWrongStage
	}
	snap, fieldErrs := c.session.Confirm()
	if len(fieldErrs) > 0 {
		c.log.Info("workflow.confirm.rejected", "fields", len(fieldErrs))
		return fieldErrs, nil
	}
	c.snapshot = snap
	c.session = nil
	c.stage = StageRender
	c.log.Info("workflow.transition", "from", StageVerify, "to", StageRender, "trigger", "confirm")
	return nil, nil
}

// CancelVerification discards the working copy: VERIFY -> INTAKE,
// snapshot absent.
func (c *Controller) CancelVerification() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageVerify {
		return ErrWrongStage
	}
	c.session.Cancel()
	c.session = nil
	c.stage = StageIntake
	c.log.Info("workflow.transition", "from", StageVerify, "to", StageIntake, "trigger", "cancel")
	return nil
}

// Rendered returns the finalized snapshot. Only legal in RENDER, which is
// what makes "render without data" unrepresentable for callers.
func (c *Controller) Rendered() (schema.ExtractedData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageRender {
		return schema.ExtractedData{}, ErrWrongStage
	}
	return c.snapshot.Clone(), nil
}

// Reopen re-enters verification from RENDER to correct a confirmed
// contract. The working copy is a fresh copy of the finalized snapshot;
// the snapshot itself is immutable, so nothing already rendered can change
// retroactively.
func (c *Controller) Reopen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageRender {
		return ErrWrongStage
	}
	c.session = verify.NewSession(c.snapshot.Clone())
	c.snapshot = schema.ExtractedData{}
	c.stage = StageVerify
	c.log.Info("workflow.transition", "from", StageRender, "to", StageVerify, "trigger", "reopen")
	return nil
}

// Reset returns to INTAKE from any stage and discards all data.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	from := c.stage
	c.epoch++
	c.inFlight = false
	if c.session != nil {
		c.session.Cancel()
	}
	c.session = nil
	c.snapshot = schema.ExtractedData{}
	c.stage = StageIntake
	c.log.Info("workflow.transition", "from", from, "to", StageIntake, "trigger", "reset")
}
