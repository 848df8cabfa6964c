package evidencestore

import "errors"

var (
	// ErrFileNotFound возвращается, когда файл по content reference не найден
	ErrFileNotFound = errors.New("evidence file not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("evidencestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("evidencestore client: invalid response")
)
