package pkgtable

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

const xlsCharset = "utf-8"

var errNoWorkbook = errors.New("open xls: no workbook stream")

// ReadXLS parses the first sheet of a legacy BIFF (.xls) workbook with the
// same header and blank-row rules as ReadXLSX.
func ReadXLS(r io.ReadSeeker) (*Table, error) {
	wb, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb == nil {
		return nil, errNoWorkbook
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoColumns
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row, ok := sheetRow(sheet, i)
		if !ok {
			if i == 0 {
				return nil, ErrNoColumns
			}
			continue
		}

		cells := make([]string, row.LastCol())
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}

	return fromSheetRows(rows)
}

// sheetRow returns row i of sheet. WorkSheet.Row panics for a row the sheet
// does not store, so that case is reported as !ok.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = nil, false
		}
	}()

	return sheet.Row(i), true
}
