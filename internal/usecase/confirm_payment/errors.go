package confirm_payment

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental не найден
	ErrRentalNotFound = errors.New("confirm_payment: rental not found")

	// ErrBillNotComputed возвращается, когда оплата подтверждается без рассчитанного bill
	ErrBillNotComputed = errors.New("confirm_payment: bill has not been computed")

	// ErrAlreadyClosed возвращается при повторном подтверждении оплаты
	ErrAlreadyClosed = errors.New("confirm_payment: rental is already closed")

	// ErrInvalidTransition возвращается, когда rental не готов к закрытию
	ErrInvalidTransition = errors.New("confirm_payment: rental is not awaiting payment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
