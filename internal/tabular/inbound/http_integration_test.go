package inbound

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgrouter"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkguid"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/store"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/usecase"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "uploads")
	disk, err := store.NewDiskStore(root)
	require.NoError(t, err)

	uc := usecase.New(usecase.Dependency{Store: disk})
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)

	return router, root
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func upload(t *testing.T, router http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, "file", filename, content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func process(t *testing.T, router http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestUploadThenProcess(t *testing.T) {
	router, root := newTestServer(t)

	rec := upload(t, router, "data.csv", []byte("a,b,c\n1,2,3\n4,5,6\n"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var uploaded UploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&uploaded))
	assert.Equal(t, UploadResponse{Columns: []string{"a", "b", "c"}, Filename: "data.csv"}, uploaded)

	payload := `{"filename":"data.csv","columns":["a","b"],"transformations":{"a":{"type":"multiply","value":2}}}`
	first := process(t, router, payload)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, "a,b\n2,2\n8,5\n", first.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", first.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=processed_data.csv", first.Header().Get("Content-Disposition"))

	stored, err := os.ReadFile(filepath.Join(root, "processed_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, first.Body.String(), string(stored))

	second := process(t, router, payload)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestUploadSpreadsheet(t *testing.T) {
	router, _ := newTestServer(t)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"city", "population"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Oslo", 709000}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rec := upload(t, router, "cities.xlsx", buf.Bytes())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var uploaded UploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&uploaded))
	assert.Equal(t, []string{"city", "population"}, uploaded.Columns)

	out := process(t, router, `{"filename":"cities.xlsx","columns":["population"],"transformations":{"population":{"type":"multiply","value":0.5}}}`)
	require.Equal(t, http.StatusOK, out.Code, out.Body.String())
	assert.Equal(t, "population\n354500.0\n", out.Body.String())
	assert.Equal(t, "attachment; filename=processed_cities.xlsx", out.Header().Get("Content-Disposition"))
}

func TestUploadErrors(t *testing.T) {
	router, _ := newTestServer(t)

	rec := upload(t, router, "", []byte("a\n1\n"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No selected file", errorMessage(t, rec))

	rec = upload(t, router, "notes.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unsupported file format", errorMessage(t, rec))

	body, contentType := multipartBody(t, "document", "data.csv", []byte("a\n1\n"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file part", errorMessage(t, rec))

	req = httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("a,b\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file part", errorMessage(t, rec))
}

func TestUploadFieldWithoutFilenameIsNotAFile(t *testing.T) {
	router, _ := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"`)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("a\n1\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file part", errorMessage(t, rec))
}

func TestProcessErrors(t *testing.T) {
	router, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, upload(t, router, "data.csv", []byte("a,b\n1,x\n")).Code)

	tests := []struct {
		name    string
		payload string
		status  int
		message string
	}{
		{"never uploaded", `{"filename":"missing.csv"}`, http.StatusNotFound, "File not found"},
		{"truncated body", `{"filename":`, http.StatusBadRequest, "invalid request body"},
		{"body is not json", `filename=data.csv`, http.StatusBadRequest, "invalid request body"},
		{"transformation entry is not an object", `{"filename":"data.csv","transformations":{"a":"x"}}`, http.StatusInternalServerError, "Internal server error"},
		{"transformation without type", `{"filename":"data.csv","transformations":{"a":{"value":2}}}`, http.StatusInternalServerError, "Internal server error"},
		{"transformations are null", `{"filename":"data.csv","transformations":null}`, http.StatusInternalServerError, "Internal server error"},
		{"transformations are a list", `{"filename":"data.csv","transformations":[]}`, http.StatusInternalServerError, "Internal server error"},
		{"string factor", `{"filename":"data.csv","transformations":{"a":{"type":"multiply","value":"2"}}}`, http.StatusInternalServerError, "Internal server error"},
		{"missing file checked before transformations", `{"filename":"missing.csv","transformations":{"a":"x"}}`, http.StatusNotFound, "File not found"},
		{"missing filename", `{"columns":["a"]}`, http.StatusUnprocessableEntity, "validation error"},
		{"unknown column", `{"filename":"data.csv","columns":["zz"]}`, http.StatusInternalServerError, "Internal server error"},
		{"non numeric cells", `{"filename":"data.csv","transformations":{"b":{"type":"multiply","value":2}}}`, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := process(t, router, tt.payload)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestProcessAbsentColumnTransformationIsNoop(t *testing.T) {
	router, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, upload(t, router, "data.csv", []byte("a,b,c\n1,2,3\n")).Code)

	rec := process(t, router, `{"filename":"data.csv","columns":["a"],"transformations":{"c":{"type":"multiply","value":10},"a":{"type":"add","value":1}}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "a\n1\n", rec.Body.String())
}

func TestProcessNonStringTypeIsNoop(t *testing.T) {
	router, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, upload(t, router, "data.csv", []byte("a,b\n1,2\n")).Code)

	rec := process(t, router, `{"filename":"data.csv","transformations":{"a":{"type":5,"value":2}}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "a,b\n1,2\n", rec.Body.String())
}

func TestProcessFloatFactorWritesFloats(t *testing.T) {
	router, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, upload(t, router, "data.csv", []byte("a,b\n1,2\n4,5\n")).Code)

	rec := process(t, router, `{"filename":"data.csv","transformations":{"a":{"type":"multiply","value":2.0}}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "a,b\n2.0,2\n8.0,5\n", rec.Body.String())
}
