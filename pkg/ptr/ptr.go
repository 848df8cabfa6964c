package ptr

// Ptr возвращает указатель на значение
// Удобно для передачи literal-значений в опциональные поля
func Ptr[T any](v T) *T {
	return &v
}
