package export

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/vmp-veiculos/contratos/internal/contract"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ArtifactName names the downloadable contract after the lessee:
// lower-cased, whitespace replaced with underscores.
func ArtifactName(lesseeName string) string {
	name := whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(lesseeName)), "_")
	if name == "" {
		name = "contrato"
		return name + ".pdf"
	}
	return "contrato_" + name + ".pdf"
}

// BuildPDF lays the rendered document out on paginated A4 pages and
// returns the bytes. The document arrives already merged; this function
// knows nothing about fields or templates, only blocks and styles.
func BuildPDF(doc contract.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// cp1252 covers Portuguese; without the translator fpdf would garble
	// every accented character in the legal prose.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, b := range doc.Blocks {
		style := ""
		if b.Style.Bold {
			style = "B"
		}
		size := 10.0
		lineHeight := 5.0
		switch {
		case b.Kind == contract.KindTitle:
			size = 12.5
			style = ""
		case b.Style.Small:
			size = 8.0
			lineHeight = 4.0
		}
		pdf.SetFont("Times", style, size)

		if b.Style.Red {
			pdf.SetTextColor(208, 0, 0)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}

		align := "J"
		if b.Style.Center || b.Kind == contract.KindTitle {
			align = "C"
		}

		if b.Kind == contract.KindSignature {
			// Signature area: rule above the first signature block.
			if !strings.HasPrefix(b.Text, "CPF") {
				pdf.Ln(14)
				x, y := pdf.GetXY()
				pdf.Line(x+30, y, x+144, y)
				pdf.Ln(2)
			}
			align = "C"
		}

		pdf.MultiCell(0, lineHeight, tr(b.Text), "", align, false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ExportError{
			Format:   "pdf",
			Fallback: "use Imprimir e escolha Salvar como PDF",
			Cause:    err,
		}
	}
	return buf.Bytes(), nil
}
