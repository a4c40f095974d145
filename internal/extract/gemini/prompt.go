package gemini

import (
	"encoding/json"
	"strings"

	"github.com/vmp-veiculos/contratos/internal/extract"
)

// buildPrompt composes the instruction sent alongside the document images.
// The field vocabulary comes straight from the contract schema so prompt
// and normalizer can never drift apart.
func buildPrompt() string {
	parts := []string{
		"Você lê documentos brasileiros: CNH (habilitação), comprovante de residência e CRLV (registro do veículo).",
		"Extraia os campos abaixo das imagens anexadas e responda SOMENTE com JSON que satisfaça o JSON Schema fornecido.",
		"Agrupe os campos exatamente nas seções do schema (cnh, residencia, crlv, extra).",
		"Copie os valores como aparecem no documento, preservando acentos, pontuação e formatação (ex.: \"461.227.128-92\").",
		"Se um campo não estiver legível ou não existir no documento, omita a chave. Nunca responda null.",
		"Não invente valores. A seção extra (termos comerciais) normalmente não consta dos documentos; deixe-a vazia.",
		"JSON Schema:\n" + mustJSON(extract.BuildContractJSONSchema()),
	}
	return strings.Join(parts, "\n")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
