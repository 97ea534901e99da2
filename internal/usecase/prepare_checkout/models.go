package prepare_checkout

// Request модель запроса на оформление группы
// Группа ищется по составному ключу roomId/date/time объединённого интервала
type Request struct {
	RoomID int64
	Date   string
	Time   string
}
