// Package verify owns the only mutable stop in the pipeline: the working
// copy that the operator reviews and corrects before the contract can be
// rendered. Edits never leak: the snapshot handed in stays untouched, and
// only a successful Confirm produces a new one.
package verify

import (
	"fmt"
	"sync"

	"github.com/vmp-veiculos/contratos/internal/common"
	"github.com/vmp-veiculos/contratos/internal/schema"
)

// FieldError is one validation failure, addressed so the operator can fix
// exactly the field that is wrong without losing other entries.
type FieldError struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s.%s %s", e.Section, e.Field, e.Message)
}

// requiredFields is the validation floor: lessee identity and the
// commercial terms the contract cannot be signed without. The exact list
// is a domain decision, not something inferred from incidental behavior.
var requiredFields = []schema.FieldRef{
	{Section: schema.SectionCNH, Field: "nome"},
	{Section: schema.SectionCNH, Field: "cpf"},
	{Section: schema.SectionExtra, Field: "valorTotal"},
	{Section: schema.SectionExtra, Field: "numeroParcelas"},
	{Section: schema.SectionExtra, Field: "valorParcela"},
}

// Session holds the working copy for one pass through verification. Each
// HTTP request runs on its own goroutine, so the session guards its data:
// the controller hands the pointer out and concurrent edits, reads and
// confirms must not race.
type Session struct {
	mu   sync.Mutex
	data schema.ExtractedData
}

// NewSession seeds a session with a structural copy of the snapshot;
// no field is dropped and the caller's value is never aliased.
func NewSession(snapshot schema.ExtractedData) *Session {
	return &Session{data: snapshot.Clone()}
}

// Set replaces the value of one named field in one named section.
func (s *Session) Set(section, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.Set(&s.data, section, field, value)
}

// Get reads one field of the working copy.
func (s *Session) Get(section, field string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.Get(s.data, section, field)
}

// Data returns a copy of the current working state for display.
func (s *Session) Data() schema.ExtractedData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Confirm validates the working copy. When everything passes it returns
// the finalized snapshot and a nil slice; otherwise it returns the
// failures per field and no snapshot. Confirm does not mutate the working
// copy, so calling it twice on unchanged valid data yields equal results.
func (s *Session) Confirm() (schema.ExtractedData, []FieldError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := common.NewValidator()
	for _, ref := range requiredFields {
		value, _ := schema.Get(s.data, ref.Section, ref.Field)
		rules := []common.ValidationRule{common.Required}
		if ref.Section == schema.SectionExtra && ref.Field == "numeroParcelas" {
			rules = append(rules, common.DigitsOnly)
		}
		v.Field(ref.String(), value, rules...)
	}

	if v.HasErrors() {
		errs := make([]FieldError, 0, len(v.Errors()))
		for _, ve := range v.Errors() {
			section, field, _ := splitRef(ve.Field)
			errs = append(errs, FieldError{Section: section, Field: field, Message: ve.Message})
		}
		return schema.ExtractedData{}, errs
	}
	return s.data.Clone(), nil
}

// Cancel discards the working copy unconditionally. The session must not
// be used afterwards.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = schema.ExtractedData{}
}

func splitRef(joined string) (section, field string, ok bool) {
	for i := 0; i < len(joined); i++ {
		if joined[i] == '.' {
			return joined[:i], joined[i+1:], true
		}
	}
	return joined, "", false
}
