package rentalcheck

import "errors"

var (
	// ErrCheckAlreadyExists возвращается при попытке создать второй check того же типа
	ErrCheckAlreadyExists = errors.New("rentalcheck.repository: check of this type already recorded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rentalcheck.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rentalcheck.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rentalcheck.repository: failed to scan row")
)
