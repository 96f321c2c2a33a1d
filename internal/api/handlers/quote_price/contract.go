package quote_price

import (
	"context"

	quotePriceUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/quote_price"
)

type QuotePriceUseCase interface {
	Execute(ctx context.Context, req quotePriceUC.Request) (*quotePriceUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
