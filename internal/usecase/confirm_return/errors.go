package confirm_return

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental не найден
	ErrRentalNotFound = errors.New("confirm_return: rental not found")

	// ErrInvalidTransition возвращается, когда rental не в статусе in_use
	ErrInvalidTransition = errors.New("confirm_return: rental is not in use")

	// ErrCheckAlreadyRecorded возвращается при повторной фиксации возврата
	ErrCheckAlreadyRecorded = errors.New("confirm_return: return check already recorded")

	// ErrEvidenceIncomplete возвращается, когда evidence-файлы отсутствуют или нечитаемы
	ErrEvidenceIncomplete = errors.New("confirm_return: evidence is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_return: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_return: internal error")
)
