package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgerror"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/usecase"
)

const filePartName = "file"

var errNoFilePart = pkgerror.NewBadRequest("No file part")

type HTTPEndpoint struct {
	uc        uc
	validator *validator.Validate
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	filename, content, err := extractMultipartFile(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Upload(ctx, usecase.UploadInput{
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		return nil, err
	}

	return UploadResponse{
		Columns:  result.Columns,
		Filename: result.Filename,
	}, nil
}

func (h *HTTPEndpoint) Process(ctx context.Context, r *http.Request) (any, error) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	if err := h.validator.StructCtx(ctx, req); err != nil {
		return nil, pkgerror.NewInvalidInput(err)
	}

	result, err := h.uc.Process(ctx, usecase.ProcessInput{
		Filename:        req.Filename,
		Columns:         req.Columns,
		Transformations: req.Transformations,
	})
	if err != nil {
		return nil, err
	}

	return ProcessedFile{name: result.Filename, content: result.Content}, nil
}

// extractMultipartFile returns the client filename and content of the first
// "file" part that carries a filename parameter. A part without one is a
// plain form field and does not count as a file.
func extractMultipartFile(r *http.Request) (string, []byte, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return "", nil, errNoFilePart
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return "", nil, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, errNoFilePart
			}
			return "", nil, pkgerror.NewInvalidFormat()
		}

		filename, ok := partFilename(part)
		if part.FormName() != filePartName || !ok {
			_ = part.Close()
			continue
		}

		content, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return "", nil, pkgerror.NewInvalidFormat()
		}

		return filename, content, nil
	}
}

// partFilename reports the raw filename parameter, distinguishing an empty
// filename="" from a missing one.
func partFilename(part *multipart.Part) (string, bool) {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false
	}

	filename, ok := params["filename"]
	return filename, ok
}
