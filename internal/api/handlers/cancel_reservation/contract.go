package cancel_reservation

import (
	"context"

	cancelReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/cancel_reservation"
)

type CancelReservationUseCase interface {
	Execute(ctx context.Context, req cancelReservationUC.Request) (*cancelReservationUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
