// Package pkgtable implements the in-memory tabular dataset used between
// parsing an uploaded file and writing the processed one.
//
// A Table is an ordered list of uniquely named columns plus rows of string
// cells. Readers exist for CSV, XLSX (excelize) and legacy XLS files; the only
// writer is CSV. Cells keep their original text until an operation such as
// MultiplyColumn rewrites them.
package pkgtable
