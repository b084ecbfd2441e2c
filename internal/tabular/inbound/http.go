package inbound

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgrouter"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular/usecase"
)

type uc interface {
	Upload(ctx context.Context, in usecase.UploadInput) (usecase.UploadResult, error)
	Process(ctx context.Context, in usecase.ProcessInput) (usecase.ProcessResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{
		uc:        uc,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}

	r.POST("/upload", end.Upload)   // multipart, part "file"
	r.POST("/process", end.Process) // JSON body
}
