package confirm_pickup

import (
	"context"

	confirmPickup "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_pickup"
)

type ConfirmPickupUseCase interface {
	Execute(ctx context.Context, req *confirmPickup.Request) (*confirmPickup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
