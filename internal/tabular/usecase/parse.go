package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgtable"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/entity"
)

// formatOf picks the format from the filename suffix. Matching is
// case-sensitive: "data.CSV" is not a CSV file.
func formatOf(filename string) (entity.Format, bool) {
	switch {
	case strings.HasSuffix(filename, ".csv"):
		return entity.FormatCSV, true
	case strings.HasSuffix(filename, ".xlsx"):
		return entity.FormatXLSX, true
	case strings.HasSuffix(filename, ".xls"):
		return entity.FormatXLS, true
	default:
		return "", false
	}
}

func parseTable(format entity.Format, r io.ReadSeeker) (*pkgtable.Table, error) {
	switch format {
	case entity.FormatCSV:
		return pkgtable.ReadCSV(r)
	case entity.FormatXLSX:
		return pkgtable.ReadXLSX(r)
	case entity.FormatXLS:
		return pkgtable.ReadXLS(r)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
