package contract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// tokenRe matches one merge point: «secao.campo» or «secao.campo|fmt».
var tokenRe = regexp.MustCompile(`«([a-z]+)\.([A-Za-z]+)(?:\|([a-z]+))?»`)

// MergePoint is one occurrence of a field in the template.
type MergePoint struct {
	Ref       schema.FieldRef
	Formatter string
}

// MergePoints scans the template and returns every merge point in order.
// Tests enumerate these against the schema registry so an unresolvable
// placeholder can never survive review.
func MergePoints() []MergePoint {
	var out []MergePoint
	for _, b := range template {
		for _, m := range tokenRe.FindAllStringSubmatch(b.Text, -1) {
			out = append(out, MergePoint{
				Ref:       schema.FieldRef{Section: m[1], Field: m[2]},
				Formatter: m[3],
			})
		}
	}
	return out
}

// Formatting rules, each independently testable, used by the merge step.
// Legal-text authoring stays in template.go; how a value is shaped on the
// page lives here.

// renderName upper-cases a party's legal name at the merge point. The
// stored snapshot keeps the original casing.
func renderName(v string) string { return strings.ToUpper(v) }

// renderUpper upper-cases a non-name field the contract shouts.
func renderUpper(v string) string { return strings.ToUpper(v) }

// renderOptionalParenthetical emits "(LABEL: value)" or, when the value is
// empty, nothing at all. Never a placeholder string.
func renderOptionalParenthetical(label, v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return "(" + label + ": " + v + ")"
}

// Render merges the snapshot into the legal template. It fails, rather
// than emitting a broken contract, if any merge point cannot resolve.
func Render(data schema.ExtractedData) (Document, error) {
	var unresolved []string

	resolve := func(match string) string {
		m := tokenRe.FindStringSubmatch(match)
		value, ok := schema.Get(data, m[1], m[2])
		if !ok {
			unresolved = append(unresolved, match)
			return match
		}
		switch m[3] {
		case "":
			return value
		case "name":
			return renderName(value)
		case "upper":
			return renderUpper(value)
		case "refopt":
			return renderOptionalParenthetical("REF", value)
		default:
			unresolved = append(unresolved, match)
			return match
		}
	}

	blocks := make([]Block, 0, len(template))
	for _, b := range template {
		merged := b
		merged.Text = tokenRe.ReplaceAllStringFunc(b.Text, resolve)
		blocks = append(blocks, merged)
	}

	if len(unresolved) > 0 {
		return Document{}, fmt.Errorf("contract: unresolved merge points: %s", strings.Join(unresolved, ", "))
	}
	return Document{Blocks: blocks}, nil
}
