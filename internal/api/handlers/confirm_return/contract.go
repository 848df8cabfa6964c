package confirm_return

import (
	"context"

	confirmReturn "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_return"
)

type ConfirmReturnUseCase interface {
	Execute(ctx context.Context, req *confirmReturn.Request) (*confirmReturn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
