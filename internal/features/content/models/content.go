package models

// Фолбэки для отсутствующих ключей контента. Отсутствие ключа не является
// ошибкой — страница рендерится с заглушкой.
const (
	FallbackImage  = "/static/image/no_image.png"
	FallbackAvatar = "/static/image/no_avatar.png"
)

// Значения по умолчанию для типизированных параметров
const (
	DefaultConfirmTimedelta = 45 // минуты
	DefaultPeriodOfBooking  = 14 // дни вперёд, на которые открыта запись
	DefaultWorkStart        = "09:00"
	DefaultWorkEnd          = "23:00"
)

// Parameters типизированные настройки ресторана, читаются один раз на процесс
type Parameters struct {
	ConfirmTimedelta int    `json:"confirm_timedelta"` // окно подтверждения, минуты
	PeriodOfBooking  int    `json:"period_of_booking"` // горизонт бронирования, дни
	WorkStart        string `json:"work_start"`
	WorkEnd          string `json:"work_end"`
}

// PageContent набор текстов, изображений и ссылок одной страницы
type PageContent struct {
	Texts  map[string]string `json:"texts"`
	Images map[string]string `json:"images"`
	Links  map[string]string `json:"links"`
}
