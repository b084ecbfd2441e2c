package usecase

import "encoding/json"

type UploadInput struct {
	Filename string
	Content  []byte
}

type UploadResult struct {
	Columns  []string
	Filename string
}

// ProcessInput carries the transformation object undecoded; its shape is
// checked only once the stored file has been loaded.
type ProcessInput struct {
	Filename        string
	Columns         []string
	Transformations json.RawMessage
}

type ProcessResult struct {
	Filename string
	Content  []byte
	Rows     int
}
