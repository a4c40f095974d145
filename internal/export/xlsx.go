package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// BuildXLSX returns a one-sheet workbook listing every field of the
// finalized snapshot, section by section, for the store's own records.
func BuildXLSX(data schema.ExtractedData) ([]byte, error) {
	wrap := func(err error) *ExportError {
		return &ExportError{
			Format:   "xlsx",
			Fallback: "exporte o contrato em PDF",
			Cause:    err,
		}
	}

	f := excelize.NewFile()
	const sheet = "Contrato"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, wrap(err)
		}
	}
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}
	// Drop the default sheet so the workbook opens on the data.
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Seção", "Campo", "Valor"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, wrap(err)
		}
	}

	row := 2
	for _, ref := range schema.Fields() {
		value, _ := schema.Get(data, ref.Section, ref.Field)

		write := func(col int, v any) error {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return f.SetCellValue(sheet, cell, v)
		}
		if err := write(1, ref.Section); err != nil {
			return nil, wrap(err)
		}
		if err := write(2, ref.Field); err != nil {
			return nil, wrap(err)
		}
		if err := write(3, value); err != nil {
			return nil, wrap(err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrap(err)
	}
	return buf.Bytes(), nil
}
