package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда reservation не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrAlreadyConsumed возвращается при попытке повторно связать reservation с rental
	ErrAlreadyConsumed = errors.New("reservation.repository: reservation already consumed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
