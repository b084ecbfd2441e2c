package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgerror"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgfile"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgtable"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkguid"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/entity"
)

var (
	errNoSelectedFile    = pkgerror.NewBadRequest("No selected file")
	errUnsupportedFormat = pkgerror.NewBadRequest("Unsupported file format")
	errFileNotFound      = pkgerror.NewBusiness("File not found", pkgerror.CodeNotFound)
)

// Store persists raw files by name. Open returns pkgerror.ErrNotFound when
// nothing is stored under name.
type Store interface {
	Save(ctx context.Context, name string, content []byte) error
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

// Metrics counts parsed uploads by format and the rows written by Process.
type Metrics interface {
	UploadParsed(format string)
	RowsProcessed(n int)
}

// Dependency holds what New needs. Metrics and RunID may be nil.
type Dependency struct {
	Store   Store
	Metrics Metrics
	RunID   pkguid.NumberID
}

// Usecase implements the upload and process flows over a Store.
type Usecase struct {
	store   Store
	metrics Metrics
	runID   pkguid.NumberID
}

// New returns a Usecase backed by dep.Store. A nil Metrics discards counts.
func New(dep Dependency) *Usecase {
	metrics := dep.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Usecase{
		store:   dep.Store,
		metrics: metrics,
		runID:   dep.RunID,
	}
}

type noopMetrics struct{}

func (noopMetrics) UploadParsed(string) {}
func (noopMetrics) RowsProcessed(int)   {}

// Upload stores the file under its safe name and reports the header of the
// parsed table. The file is kept even when its suffix is not supported.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if in.Filename == "" {
		return UploadResult{}, errNoSelectedFile
	}

	filename := pkgfile.SecureFilename(in.Filename)
	if filename == "" {
		return UploadResult{}, errNoSelectedFile
	}

	if err := u.store.Save(ctx, filename, in.Content); err != nil {
		return UploadResult{}, pkgerror.NewServer(err)
	}

	format, ok := formatOf(filename)
	if !ok {
		return UploadResult{}, errUnsupportedFormat
	}

	table, err := parseTable(format, bytes.NewReader(in.Content))
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse uploaded file", "filename", filename, "format", format, "error", err)
		return UploadResult{}, pkgerror.NewServer(err)
	}

	u.metrics.UploadParsed(string(format))
	slog.InfoContext(ctx, "file uploaded", "filename", filename, "format", format, "columns", len(table.Columns()))

	return UploadResult{
		Columns:  table.Columns(),
		Filename: filename,
	}, nil
}

// Process reloads a stored file, projects it onto the requested columns,
// applies the multiply transformations and stores the result as CSV under
// the processed name. A malformed transformation object is a server error
// reported after the file lookup, so a missing file still answers 404.
func (u *Usecase) Process(ctx context.Context, in ProcessInput) (ProcessResult, error) {
	filename := pkgfile.SecureFilename(in.Filename)
	if filename == "" {
		return ProcessResult{}, errFileNotFound
	}

	log := slog.With("filename", filename)
	if u.runID != nil {
		log = log.With("run_id", u.runID.Generate())
	}

	table, err := u.load(ctx, filename)
	if err != nil {
		return ProcessResult{}, err
	}

	if len(in.Columns) > 0 {
		table, err = table.Select(in.Columns)
		if err != nil {
			log.ErrorContext(ctx, "failed to select columns", "columns", in.Columns, "error", err)
			return ProcessResult{}, pkgerror.NewServer(err)
		}
	}

	ops, err := entity.ParseTransformations(in.Transformations)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse transformations", "error", err)
		return ProcessResult{}, pkgerror.NewServer(err)
	}

	if err := applyTransformations(table, ops); err != nil {
		log.ErrorContext(ctx, "failed to apply transformations", "error", err)
		return ProcessResult{}, pkgerror.NewServer(err)
	}

	var buf bytes.Buffer
	if err := pkgtable.WriteCSV(&buf, table); err != nil {
		return ProcessResult{}, pkgerror.NewServer(err)
	}

	processed := entity.ProcessedName(filename)
	if err := u.store.Save(ctx, processed, buf.Bytes()); err != nil {
		return ProcessResult{}, pkgerror.NewServer(err)
	}

	u.metrics.RowsProcessed(table.Len())
	log.InfoContext(ctx, "file processed", "processed", processed, "rows", table.Len())

	return ProcessResult{
		Filename: processed,
		Content:  buf.Bytes(),
		Rows:     table.Len(),
	}, nil
}

func (u *Usecase) load(ctx context.Context, filename string) (*pkgtable.Table, error) {
	f, err := u.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return nil, errFileNotFound
		}
		return nil, pkgerror.NewServer(err)
	}
	defer f.Close()

	format, ok := formatOf(filename)
	if !ok {
		return nil, errUnsupportedFormat
	}

	table, err := parseTable(format, f)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse stored file", "filename", filename, "format", format, "error", err)
		return nil, pkgerror.NewServer(err)
	}

	return table, nil
}

// applyTransformations runs the multiply entries in column-name order.
// Entries of another type or naming a column outside the table are skipped.
func applyTransformations(table *pkgtable.Table, ops map[string]entity.Operation) error {
	for _, column := range slices.Sorted(maps.Keys(ops)) {
		op := ops[column]
		if op.Type != entity.OperationMultiply || !table.HasColumn(column) {
			continue
		}

		factor, err := op.Factor()
		if err != nil {
			return err
		}

		if err := table.MultiplyColumn(column, factor); err != nil {
			return err
		}
	}

	return nil
}
