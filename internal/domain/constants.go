package domain

// Default values
const (
	DefaultEstimatedHours = 1.5                 // labor hours assumed when the caller does not override
	DefaultWorkingHours   = "9:00 AM - 6:00 PM" // service center schedule fallback
)

// Business validation constants
const (
	MinVehicleYear = 1900
	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // combined booking instant
)

// ActiveStatuses список статусов, при которых бронирование ещё не завершено
// Используется для фильтрации текущей загрузки сервисных центров
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses список конечных статусов жизненного цикла
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
