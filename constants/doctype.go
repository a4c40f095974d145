package constants

import "strings"

// TipoDocumento is the canonical tag for the lessor's registration document.
type TipoDocumento string

const (
	TipoCPF  TipoDocumento = "CPF"
	TipoCNPJ TipoDocumento = "CNPJ"
)

var allTipos = []TipoDocumento{TipoCPF, TipoCNPJ}

// TiposAsStringSlice returns the closed set of document-type tags.
func TiposAsStringSlice() []string {
	result := make([]string, len(allTipos))
	for i, t := range allTipos {
		result[i] = string(t)
	}
	return result
}

// CanonicalizeTipo maps free-form provider output onto the closed set.
// Unknown input falls back to CPF, the common case for individual lessors.
func CanonicalizeTipo(input string) (TipoDocumento, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, t := range allTipos {
		if normalized == string(t) {
			return t, true
		}
	}
	return TipoCPF, false
}
