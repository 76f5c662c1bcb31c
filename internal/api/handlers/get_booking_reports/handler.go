package get_booking_reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/service/reports"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются целые year и month"
	msgPartialPeriod = "year и month должны быть указаны вместе"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings
// Без параметров возвращает сводный отчет, с year и month помесячный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	// Сводный отчет без периода
	if yearStr == "" && monthStr == "" {
		report, err := h.service.Summary(r.Context())
		if err != nil {
			h.logger.Error("GET /reports/bookings - Failed to build summary report: error=%v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /reports/bookings - Summary report built successfully: total_bookings=%d",
			report.Summary.TotalBookings)
		handlers.RespondJSON(w, http.StatusOK, report)
		return
	}

	if yearStr == "" || monthStr == "" {
		h.logger.Warn("GET /reports/bookings - Partial period: year=%q, month=%q", yearStr, monthStr)
		handlers.RespondBadRequest(w, msgPartialPeriod)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /reports/bookings - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /reports/bookings - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.service.Monthly(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/bookings - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/bookings - Failed to build monthly report: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/bookings - Monthly report built successfully: year=%d, month=%d, total_bookings=%d",
		year, month, report.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, report)
}
