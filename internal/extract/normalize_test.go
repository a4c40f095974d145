package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

var testLocador = schema.Locador{
	Nome:          "CAIO ROBERTO DE SOUZA OLIVEIRA",
	Documento:     "461.227.128-92",
	TipoDocumento: "CPF",
	Telefone:      "(15) 996017089",
}

func TestNormalizeEveryFieldPresentOnPartialOutput(t *testing.T) {
	// The provider returned a single field; every other schema field must
	// still be present as the empty string, never absent.
	raw := []byte(`{"cnh": {"nome": "JOÃO"}}`)

	data, _, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)

	got, ok := schema.Get(data, schema.SectionCNH, "nome")
	require.True(t, ok)
	assert.Equal(t, "JOÃO", got)

	for _, ref := range schema.Fields() {
		if ref.Section == schema.SectionLocador || (ref.Section == schema.SectionCNH && ref.Field == "nome") {
			continue
		}
		value, ok := schema.Get(data, ref.Section, ref.Field)
		require.True(t, ok, "field %s missing", ref)
		assert.Empty(t, value, "field %s should default to empty", ref)
	}
}

func TestNormalizeSubsetsAlwaysComplete(t *testing.T) {
	cases := []string{
		`{}`,
		`{"crlv": {"placa": "ABC1D23"}}`,
		`{"cnh": {"nome": "ANA", "cpf": "111.222.333-44"}, "residencia": {"cidade": "Sorocaba"}}`,
		`{"extra": {}}`,
	}
	for _, raw := range cases {
		data, _, err := NormalizeProviderOutput([]byte(raw), testLocador)
		require.NoError(t, err, "input %s", raw)
		for _, ref := range schema.Fields() {
			_, ok := schema.Get(data, ref.Section, ref.Field)
			assert.True(t, ok, "input %s: field %s missing", raw, ref)
		}
	}
}

func TestNormalizeDropsUnknownKeys(t *testing.T) {
	raw := []byte(`{
		"cnh": {"nome": "ANA", "categoria": "B"},
		"seguro": {"apolice": "123"}
	}`)

	data, dropped, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)

	got, _ := schema.Get(data, schema.SectionCNH, "nome")
	assert.Equal(t, "ANA", got)
	assert.Contains(t, dropped, "cnh.categoria(unknown field)")
	assert.Contains(t, dropped, "seguro(unknown section)")
}

func TestNormalizeMatchesProviderCasing(t *testing.T) {
	// Providers relabel fields; casing and separator noise must not lose
	// values.
	raw := []byte(`{
		"CNH": {"Nome": "ANA", "orgao_emissor": "SSP-SP"},
		"Residencia": {"CEP": "18000-000"}
	}`)

	data, _, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)

	nome, _ := schema.Get(data, schema.SectionCNH, "nome")
	orgao, _ := schema.Get(data, schema.SectionCNH, "orgaoEmissor")
	cep, _ := schema.Get(data, schema.SectionResidencia, "cep")
	assert.Equal(t, "ANA", nome)
	assert.Equal(t, "SSP-SP", orgao)
	assert.Equal(t, "18000-000", cep)
}

func TestNormalizeCoercesScalars(t *testing.T) {
	raw := []byte(`{
		"crlv": {"anoModelo": 2021, "placa": null},
		"extra": {"numeroParcelas": 48}
	}`)

	data, dropped, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)

	ano, _ := schema.Get(data, schema.SectionCRLV, "anoModelo")
	placa, _ := schema.Get(data, schema.SectionCRLV, "placa")
	parcelas, _ := schema.Get(data, schema.SectionExtra, "numeroParcelas")
	assert.Equal(t, "2021", ano)
	assert.Empty(t, placa)
	assert.Equal(t, "48", parcelas)
	assert.Contains(t, dropped, "crlv.anoModelo(number)")
	assert.Contains(t, dropped, "crlv.placa(null)")
}

func TestNormalizeLocadorNeverFromProvider(t *testing.T) {
	raw := []byte(`{"locador": {"nome": "GOLPISTA", "documento": "000"}}`)

	data, _, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)
	assert.Equal(t, testLocador, data.Locador)
}

func TestNormalizeRejectsNonObject(t *testing.T) {
	_, _, err := NormalizeProviderOutput([]byte(`"not an object"`), testLocador)
	require.Error(t, err)
}

func TestBuildContractJSONSchemaAcceptsCanonicalOutput(t *testing.T) {
	full := map[string]map[string]string{}
	for _, section := range schema.Sections() {
		full[section] = map[string]string{}
		for _, field := range schema.SectionFields(section) {
			full[section][field] = "v"
		}
	}
	full[schema.SectionLocador]["tipoDocumento"] = "CNPJ"

	b, err := json.Marshal(full)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildContractJSONSchema(), b))
}

func TestBuildContractJSONSchemaAcceptsEmptyDefaults(t *testing.T) {
	// Normalization defaults every missing field, the lessor document tag
	// included, to "". The schema must accept that document: the closed
	// CPF/CNPJ set is enforced when the configured lessor is applied, not
	// by the provider contract.
	empty := map[string]map[string]string{}
	for _, section := range schema.Sections() {
		empty[section] = map[string]string{}
		for _, field := range schema.SectionFields(section) {
			empty[section][field] = ""
		}
	}

	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildContractJSONSchema(), b))
}

func TestNormalizeOutputWithoutLocadorSection(t *testing.T) {
	// The prompt tells the provider to fill only the lessee sections, so a
	// realistic response never carries "locador" at all. That response must
	// normalize cleanly, with the configured identity filling the section.
	raw := []byte(`{"cnh": {"nome": "JOÃO"}, "crlv": {"placa": "ABC1D23"}}`)

	data, dropped, err := NormalizeProviderOutput(raw, testLocador)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	assert.Equal(t, testLocador, data.Locador)

	nome, _ := schema.Get(data, schema.SectionCNH, "nome")
	assert.Equal(t, "JOÃO", nome)
}

func TestBuildContractJSONSchemaRejectsStrayKeys(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildContractJSONSchema(), []byte(`{"cnh": {"categoria": "B"}}`))
	require.Error(t, err)
}
