package confirm_payment

import "time"

// Request модель запроса на подтверждение оплаты
type Request struct {
	RentalID int64 // ID rental
}

// Response модель ответа с закрытым rental
type Response struct {
	RentalID   int64     // ID rental
	Status     string    // Новый статус rental (closed)
	BillID     int64     // ID оплаченного снапшота bill
	TotalPaid  int64     // Оплаченная сумма
	RefundDue  int64     // Сумма к возврату из депозита
	ComputedAt time.Time // Время расчета оплаченного bill
}
