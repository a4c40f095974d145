package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversEveryField(t *testing.T) {
	refs := Fields()
	require.Len(t, refs, 36)

	seen := map[FieldRef]bool{}
	for _, ref := range refs {
		assert.False(t, seen[ref], "duplicate field %s", ref)
		seen[ref] = true

		var d ExtractedData
		require.NoError(t, Set(&d, ref.Section, ref.Field, "x"))
		got, ok := Get(d, ref.Section, ref.Field)
		require.True(t, ok, "field %s not readable", ref)
		assert.Equal(t, "x", got, "field %s did not round-trip", ref)
	}
}

func TestSectionFieldsMatchFieldOrder(t *testing.T) {
	total := 0
	for _, section := range Sections() {
		total += len(SectionFields(section))
	}
	assert.Equal(t, len(Fields()), total)
}

func TestSetUnknownFieldRejected(t *testing.T) {
	var d ExtractedData
	err := Set(&d, "cnh", "nomee", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")

	_, ok := Get(d, "veiculo", "placa")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	original := ExtractedData{}
	require.NoError(t, Set(&original, SectionCNH, "nome", "maria da silva"))

	clone := original.Clone()
	require.NoError(t, Set(&clone, SectionCNH, "nome", "other"))

	got, _ := Get(original, SectionCNH, "nome")
	assert.Equal(t, "maria da silva", got)
}

func TestNewEmptyRetainsLocador(t *testing.T) {
	locador := Locador{
		Nome:          "CAIO ROBERTO DE SOUZA OLIVEIRA",
		Documento:     "461.227.128-92",
		TipoDocumento: "CPF",
		Telefone:      "(15) 996017089",
	}
	d := NewEmpty(locador)

	assert.Equal(t, locador, d.Locador)
	for _, ref := range Fields() {
		if ref.Section == SectionLocador {
			continue
		}
		got, ok := Get(d, ref.Section, ref.Field)
		require.True(t, ok)
		assert.Empty(t, got, "field %s should start empty", ref)
	}
}
