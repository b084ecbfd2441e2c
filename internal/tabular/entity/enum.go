package entity

// Format is the tabular file format, chosen by filename suffix.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
)

// OperationType names a column transformation.
type OperationType string

const (
	OperationMultiply OperationType = "multiply"
)
