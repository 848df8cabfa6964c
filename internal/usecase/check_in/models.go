package check_in

import "time"

// Request модель запроса на check-in
// ReservationID = nil означает walk-in: аренда создается без предварительной брони
type Request struct {
	ReservationID     *int64     // ID консумируемой reservation (опционально)
	RenterID          int64      // ID арендатора
	VehicleID         int64      // ID транспортного средства
	StationPickupID   int64      // ID станции выдачи
	ScheduledStartAt  time.Time  // Запланированное начало (нулевое значение = сейчас)
	ScheduledReturnAt *time.Time // Запланированный возврат (опционально)
	DepositAmount     int64      // Согласованная сумма депозита
}

// Response модель ответа с созданным rental
type Response struct {
	ID                int64      // ID созданного rental
	RenterID          int64      // ID арендатора
	VehicleID         int64      // ID транспортного средства
	StationPickupID   int64      // ID станции выдачи
	ReservationID     *int64     // ID консумированной reservation (nil для walk-in)
	ScheduledStartAt  time.Time  // Запланированное начало
	ScheduledReturnAt *time.Time // Запланированный возврат
	Status            string     // Статус rental (booked)
	DepositAmount     int64      // Согласованная сумма депозита
	CreatedAt         time.Time  // Время создания
	UpdatedAt         time.Time  // Время обновления
}
