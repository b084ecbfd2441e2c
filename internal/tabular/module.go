package tabular

import (
	"context"
	"log/slog"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgconfig"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgrouter"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkguid"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/inbound"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/store"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/usecase"
)

const defaultUploadDir = "uploads"

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Metrics usecase.Metrics
	RunID   pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	root := dep.Config.GetString("storage.upload_dir")
	if root == "" {
		root = defaultUploadDir
	}

	disk, err := store.NewDiskStore(root)
	if err != nil {
		return nil, err
	}
	slog.Info("upload storage ready", "root", disk.Root())

	uc := usecase.New(usecase.Dependency{
		Store:   disk,
		Metrics: dep.Metrics,
		RunID:   dep.RunID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return func(context.Context) error { return nil }, nil
}
