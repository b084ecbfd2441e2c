package inbound

import "encoding/json"

type UploadResponse struct {
	Columns  []string `json:"columns"`
	Filename string   `json:"filename"`
}

// ProcessRequest leaves transformations undecoded; the usecase checks their
// shape after the file is found.
type ProcessRequest struct {
	Filename        string          `json:"filename" validate:"required"`
	Columns         []string        `json:"columns"`
	Transformations json.RawMessage `json:"transformations"`
}

// ProcessedFile is sent back as a CSV download.
type ProcessedFile struct {
	name    string
	content []byte
}

func (p ProcessedFile) AttachmentName() string { return p.name }
func (p ProcessedFile) ContentType() string    { return "text/csv; charset=utf-8" }
func (p ProcessedFile) Content() []byte        { return p.content }
