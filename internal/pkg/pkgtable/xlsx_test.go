package pkgtable

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		require.NoError(t, f.Close())
	}()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"region", "units", "price"},
		{"north", 10, 2.5},
		{},
		{"south", 4},
	})

	table, err := ReadXLSX(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "units", "price"}, table.Columns())
	assert.Equal(t, [][]string{
		{"north", "10", "2.5"},
		{"south", "4", ""},
	}, table.Rows())
}

func TestReadXLSXEmptySheet(t *testing.T) {
	buf := buildWorkbook(t, nil)

	_, err := ReadXLSX(buf)
	require.ErrorIs(t, err, ErrNoColumns)
}

func TestReadXLSXInvalid(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("not a zip archive")))
	require.Error(t, err)
}

func TestReadXLSInvalid(t *testing.T) {
	_, err := ReadXLS(bytes.NewReader([]byte("definitely not BIFF")))
	require.Error(t, err)
}

func TestReadXLSXIgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer func() {
		require.NoError(t, f.Close())
	}()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"amount", "rate", "label"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1234.5, 0.25, "n/a"}))

	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "A2", "A2", thousands))
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", percent))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := ReadXLSX(buf)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"1234.5", "0.25", "n/a"}}, table.Rows())
	require.NoError(t, table.MultiplyColumn("amount", IntFactor(2)))
	assert.Equal(t, "2469.0", table.Rows()[0][0])
}

func TestReadXLS(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "inventory.xls"))
	require.NoError(t, err)
	defer f.Close()

	table, err := ReadXLS(f)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "qty", "price"}, table.Columns())
	assert.Equal(t, [][]string{
		{"pen", "4", "1.5"},
		{"ink", "10", ""},
	}, table.Rows())
}
