package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vmp-veiculos/contratos/internal/contract"
	"github.com/vmp-veiculos/contratos/internal/schema"
)

func TestArtifactName(t *testing.T) {
	cases := []struct {
		name   string
		lessee string
		want   string
	}{
		{"plain name", "Maria da Silva", "contrato_maria_da_silva.pdf"},
		{"extra whitespace", "  João\tPereira  ", "contrato_joão_pereira.pdf"},
		{"already lower", "ana", "contrato_ana.pdf"},
		{"empty", "", "contrato.pdf"},
		{"only spaces", "   ", "contrato.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ArtifactName(tc.lessee))
		})
	}
}

func TestBuildPDFProducesValidDocument(t *testing.T) {
	doc := contract.Document{Blocks: []contract.Block{
		{Kind: contract.KindTitle, Style: contract.Style{Center: true}, Text: "CONTRATO DE ALUGUEL COM DIREITO A COMPRA"},
		{Kind: contract.KindClause, Style: contract.Style{Bold: true, Red: true}, Text: "LOCADOR: CAIO ROBERTO DE SOUZA OLIVEIRA"},
		{Kind: contract.KindClause, Text: "Cláusula com acentuação: apreensão, responsabilidade, veículo."},
		{Kind: contract.KindClause, Style: contract.Style{Small: true}, Text: "4.2 letra miúda."},
		{Kind: contract.KindSignature, Style: contract.Style{Bold: true, Center: true}, Text: "MARIA DA SILVA"},
		{Kind: contract.KindSignature, Style: contract.Style{Bold: true, Center: true}, Text: "CPF: 111.222.333-44"},
	}}

	out, err := BuildPDF(doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is not a PDF")
}

func TestBuildPDFEmptyDocument(t *testing.T) {
	out, err := BuildPDF(contract.Document{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestBuildXLSXListsEveryField(t *testing.T) {
	var data schema.ExtractedData
	require.NoError(t, schema.Set(&data, "cnh", "nome", "Maria da Silva"))
	require.NoError(t, schema.Set(&data, "extra", "valorTotal", "35.000,00"))

	out, err := BuildXLSX(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contrato")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(schema.Fields()))

	assert.Equal(t, []string{"Seção", "Campo", "Valor"}, rows[0])

	values := map[string]string{}
	for _, row := range rows[1:] {
		require.GreaterOrEqual(t, len(row), 2)
		value := ""
		if len(row) > 2 {
			value = row[2]
		}
		values[row[0]+"."+row[1]] = value
	}
	assert.Equal(t, "Maria da Silva", values["cnh.nome"])
	assert.Equal(t, "35.000,00", values["extra.valorTotal"])
	assert.Equal(t, "", values["crlv.placa"])

	for _, ref := range schema.Fields() {
		_, ok := values[ref.String()]
		assert.True(t, ok, "field %s missing from workbook", ref)
	}
}

func TestBuildXLSXSingleSheet(t *testing.T) {
	out, err := BuildXLSX(schema.ExtractedData{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Contrato"}, f.GetSheetList())
}
