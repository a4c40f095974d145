package schema

import "fmt"

// FieldRef names one field of the aggregate by its section and JSON key.
type FieldRef struct {
	Section string
	Field   string
}

func (r FieldRef) String() string { return r.Section + "." + r.Field }

// Section names, in the order they appear on the contract form.
const (
	SectionLocador    = "locador"
	SectionCNH        = "cnh"
	SectionResidencia = "residencia"
	SectionCRLV       = "crlv"
	SectionExtra      = "extra"
)

type accessor func(*ExtractedData) *string

// registry maps every (section, field) pair to its struct slot. Anything
// that addresses fields by name (extraction normalization, verification
// edits, template merge points) resolves through here, so an unknown name
// is always an error and never a silent no-op.
var registry = map[FieldRef]accessor{
	{SectionLocador, "nome"}:          func(d *ExtractedData) *string { return &d.Locador.Nome },
	{SectionLocador, "documento"}:     func(d *ExtractedData) *string { return &d.Locador.Documento },
	{SectionLocador, "tipoDocumento"}: func(d *ExtractedData) *string { return &d.Locador.TipoDocumento },
	{SectionLocador, "telefone"}:      func(d *ExtractedData) *string { return &d.Locador.Telefone },

	{SectionCNH, "nome"}:               func(d *ExtractedData) *string { return &d.CNH.Nome },
	{SectionCNH, "cpf"}:                func(d *ExtractedData) *string { return &d.CNH.CPF },
	{SectionCNH, "rg"}:                 func(d *ExtractedData) *string { return &d.CNH.RG },
	{SectionCNH, "orgaoEmissor"}:       func(d *ExtractedData) *string { return &d.CNH.OrgaoEmissor },
	{SectionCNH, "dataNascimento"}:     func(d *ExtractedData) *string { return &d.CNH.DataNascimento },
	{SectionCNH, "telefone"}:           func(d *ExtractedData) *string { return &d.CNH.Telefone },
	{SectionCNH, "telefoneReferencia"}: func(d *ExtractedData) *string { return &d.CNH.TelefoneReferencia },
	{SectionCNH, "email"}:              func(d *ExtractedData) *string { return &d.CNH.Email },

	{SectionResidencia, "endereco"}: func(d *ExtractedData) *string { return &d.Residencia.Endereco },
	{SectionResidencia, "numero"}:   func(d *ExtractedData) *string { return &d.Residencia.Numero },
	{SectionResidencia, "bairro"}:   func(d *ExtractedData) *string { return &d.Residencia.Bairro },
	{SectionResidencia, "cidade"}:   func(d *ExtractedData) *string { return &d.Residencia.Cidade },
	{SectionResidencia, "estado"}:   func(d *ExtractedData) *string { return &d.Residencia.Estado },
	{SectionResidencia, "cep"}:      func(d *ExtractedData) *string { return &d.Residencia.CEP },

	{SectionCRLV, "marcaModelo"}:   func(d *ExtractedData) *string { return &d.CRLV.MarcaModelo },
	{SectionCRLV, "anoModelo"}:     func(d *ExtractedData) *string { return &d.CRLV.AnoModelo },
	{SectionCRLV, "anoFabricacao"}: func(d *ExtractedData) *string { return &d.CRLV.AnoFabricacao },
	{SectionCRLV, "placa"}:         func(d *ExtractedData) *string { return &d.CRLV.Placa },
	{SectionCRLV, "renavam"}:       func(d *ExtractedData) *string { return &d.CRLV.Renavam },
	{SectionCRLV, "chassi"}:        func(d *ExtractedData) *string { return &d.CRLV.Chassi },
	{SectionCRLV, "cor"}:           func(d *ExtractedData) *string { return &d.CRLV.Cor },
	{SectionCRLV, "combustivel"}:   func(d *ExtractedData) *string { return &d.CRLV.Combustivel },

	{SectionExtra, "valorTotal"}:          func(d *ExtractedData) *string { return &d.Extra.ValorTotal },
	{SectionExtra, "valorTotalExtenso"}:   func(d *ExtractedData) *string { return &d.Extra.ValorTotalExtenso },
	{SectionExtra, "valorAto"}:            func(d *ExtractedData) *string { return &d.Extra.ValorAto },
	{SectionExtra, "valorAtoExtenso"}:     func(d *ExtractedData) *string { return &d.Extra.ValorAtoExtenso },
	{SectionExtra, "numeroParcelas"}:      func(d *ExtractedData) *string { return &d.Extra.NumeroParcelas },
	{SectionExtra, "valorParcela"}:        func(d *ExtractedData) *string { return &d.Extra.ValorParcela },
	{SectionExtra, "valorParcelaExtenso"}: func(d *ExtractedData) *string { return &d.Extra.ValorParcelaExtenso },
	{SectionExtra, "dataInicio"}:          func(d *ExtractedData) *string { return &d.Extra.DataInicio },
	{SectionExtra, "dataEntrega"}:         func(d *ExtractedData) *string { return &d.Extra.DataEntrega },
	{SectionExtra, "diaVencimento"}:       func(d *ExtractedData) *string { return &d.Extra.DiaVencimento },
}

// fieldOrder fixes a deterministic iteration order: contract-form order,
// section by section.
var fieldOrder = []FieldRef{
	{SectionLocador, "nome"}, {SectionLocador, "documento"}, {SectionLocador, "tipoDocumento"}, {SectionLocador, "telefone"},
	{SectionCNH, "nome"}, {SectionCNH, "cpf"}, {SectionCNH, "rg"}, {SectionCNH, "orgaoEmissor"},
	{SectionCNH, "dataNascimento"}, {SectionCNH, "telefone"}, {SectionCNH, "telefoneReferencia"}, {SectionCNH, "email"},
	{SectionResidencia, "endereco"}, {SectionResidencia, "numero"}, {SectionResidencia, "bairro"},
	{SectionResidencia, "cidade"}, {SectionResidencia, "estado"}, {SectionResidencia, "cep"},
	{SectionCRLV, "marcaModelo"}, {SectionCRLV, "anoModelo"}, {SectionCRLV, "anoFabricacao"}, {SectionCRLV, "placa"},
	{SectionCRLV, "renavam"}, {SectionCRLV, "chassi"}, {SectionCRLV, "cor"}, {SectionCRLV, "combustivel"},
	{SectionExtra, "valorTotal"}, {SectionExtra, "valorTotalExtenso"}, {SectionExtra, "valorAto"},
	{SectionExtra, "valorAtoExtenso"}, {SectionExtra, "numeroParcelas"}, {SectionExtra, "valorParcela"},
	{SectionExtra, "valorParcelaExtenso"}, {SectionExtra, "dataInicio"}, {SectionExtra, "dataEntrega"},
	{SectionExtra, "diaVencimento"},
}

// Fields returns every field of the aggregate in contract-form order.
func Fields() []FieldRef {
	out := make([]FieldRef, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Sections returns the five section names in contract-form order.
func Sections() []string {
	return []string{SectionLocador, SectionCNH, SectionResidencia, SectionCRLV, SectionExtra}
}

// SectionFields returns the field keys of one section, in form order.
func SectionFields(section string) []string {
	var out []string
	for _, ref := range fieldOrder {
		if ref.Section == section {
			out = append(out, ref.Field)
		}
	}
	return out
}

// Get reads one field by name.
func Get(d ExtractedData, section, field string) (string, bool) {
	acc, ok := registry[FieldRef{section, field}]
	if !ok {
		return "", false
	}
	return *acc(&d), true
}

// Set writes one field by name. Unknown names are rejected so a typo in a
// caller can never drop a value on the floor.
func Set(d *ExtractedData, section, field, value string) error {
	acc, ok := registry[FieldRef{section, field}]
	if !ok {
		return fmt.Errorf("schema: unknown field %s.%s", section, field)
	}
	*acc(d) = value
	return nil
}
