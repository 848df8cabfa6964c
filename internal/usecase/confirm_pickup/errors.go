package confirm_pickup

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental не найден
	ErrRentalNotFound = errors.New("confirm_pickup: rental not found")

	// ErrInvalidTransition возвращается, когда rental не в статусе booked
	ErrInvalidTransition = errors.New("confirm_pickup: rental is not awaiting pickup")

	// ErrCheckAlreadyRecorded возвращается при повторной фиксации выдачи
	ErrCheckAlreadyRecorded = errors.New("confirm_pickup: pickup check already recorded")

	// ErrEvidenceIncomplete возвращается, когда evidence-файлы отсутствуют или нечитаемы
	ErrEvidenceIncomplete = errors.New("confirm_pickup: evidence is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_pickup: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_pickup: internal error")
)
