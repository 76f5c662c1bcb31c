package schedule_maintenance

// ScheduleMaintenanceRequest HTTP request model.
// Нулевой или отсутствующий интервал заменяется значением по умолчанию.
type ScheduleMaintenanceRequest struct {
	IntervalDays int `json:"interval_days"`
}
