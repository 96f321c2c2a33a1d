package create_reservation

import (
	"context"

	createReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req createReservationUC.Request) (*createReservationUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
