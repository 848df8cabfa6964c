package calculate_bill

import "time"

// Request модель запроса на расчет bill
// UnitMinutes = 0 означает биллинговую единицу из конфигурации сервиса
type Request struct {
	RentalID    int64 // ID rental
	UnitMinutes int   // Биллинговая единица в минутах (опционально)
}

// Response модель ответа с рассчитанным bill
// Снапшот с этими значениями сохранен в хранилище
type Response struct {
	BillID            int64     // ID сохраненного снапшота
	RentalID          int64     // ID rental
	Status            string    // Статус rental после расчета (waiting_for_payment)
	BilledUnits       int64     // Количество оплачиваемых единиц (неполные округляются вверх)
	RatePerHour       int64     // Часовой тариф транспортного средства на момент расчета
	BaseCharge        int64     // Базовая стоимость аренды
	ViolationSubtotal int64     // Сумма начислений за violation
	DepositAdjustment int64     // Удержанный депозит, зачтенный в счет оплаты
	TotalDue          int64     // Итог к оплате (не меньше нуля)
	RefundDue         int64     // Сумма к возврату, если депозит превысил начисления
	ComputedAt        time.Time // Время расчета
}
