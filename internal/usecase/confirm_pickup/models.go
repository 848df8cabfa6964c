package confirm_pickup

import "time"

// Request модель запроса на фиксацию выдачи
// Ссылки на evidence получены заранее через загрузку в хранилище
type Request struct {
	RentalID        int64  // ID rental
	ConditionReport string // Описание состояния транспортного средства
	PhotoRef        string // Content reference фотографии
	StaffSigRef     string // Content reference подписи сотрудника
	CustomerSigRef  string // Content reference подписи арендатора
}

// Response модель ответа с зафиксированной выдачей
type Response struct {
	RentalID      int64     // ID rental
	Status        string    // Новый статус rental (in_use)
	ActualStartAt time.Time // Фактическое время выдачи
	CheckID       int64     // ID созданной evidence-записи
}
