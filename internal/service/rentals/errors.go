package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental не найден
	ErrRentalNotFound = errors.New("rentals: rental not found")

	// ErrInvalidTransition возвращается, когда операция недопустима в текущем статусе rental
	ErrInvalidTransition = errors.New("rentals: invalid status transition")

	// ErrDepositAlreadyHeld возвращается при попытке повторного hold при активном депозите
	// Инвариант: не больше одного активного (невозвращенного) hold на rental
	ErrDepositAlreadyHeld = errors.New("rentals: deposit already held")

	// ErrNoDepositHeld возвращается при попытке вернуть депозит, которого нет
	ErrNoDepositHeld = errors.New("rentals: no deposit held")

	// ErrDepositOverreturn возвращается, когда возврат превышает удержанную сумму
	ErrDepositOverreturn = errors.New("rentals: deposit return exceeds outstanding amount")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rentals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rentals: internal error")
)
