// Package export hands a fully rendered contract to the export toolchain:
// a paginated PDF artifact for download and an XLSX data sheet for the
// store's records. Both consume the in-memory document or snapshot only,
// so a failed export never touches the pipeline state and the operator can
// retry without re-entering data.
package export

import "fmt"

// ExportError reports a failed export with the fallback the operator
// should be offered.
type ExportError struct {
	Format   string // "pdf", "xlsx"
	Fallback string // operator-facing suggestion
	Cause    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Cause)
}

func (e *ExportError) Unwrap() error { return e.Cause }
