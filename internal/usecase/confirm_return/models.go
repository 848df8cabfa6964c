package confirm_return

import "time"

// Request модель запроса на фиксацию возврата
// Ссылки на evidence получены заранее через загрузку в хранилище
type Request struct {
	RentalID        int64  // ID rental
	StationReturnID *int64 // ID станции возврата (опционально, если отличается от станции выдачи)
	ConditionReport string // Описание состояния транспортного средства при возврате
	PhotoRef        string // Content reference фотографии
	StaffSigRef     string // Content reference подписи сотрудника
	CustomerSigRef  string // Content reference подписи арендатора
}

// Response модель ответа с зафиксированным возвратом
type Response struct {
	RentalID       int64     // ID rental
	Status         string    // Новый статус rental (returned)
	ActualReturnAt time.Time // Фактическое время возврата
	CheckID        int64     // ID созданной evidence-записи
}
