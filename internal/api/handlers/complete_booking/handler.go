package complete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	completeBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/complete_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные завершения"
	msgNotFound           = "бронирование не найдено"
	msgCustomerNotFound   = "клиент бронирования не найден"
	msgCannotComplete     = "бронирование не может быть завершено в текущем статусе"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		var transitionErr *domain.TransitionError
		switch {
		case errors.Is(err, completeBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/complete - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, completeBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings/{id}/complete - Customer not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.As(err, &transitionErr):
			h.logger.Warn("POST /bookings/{id}/complete - Cannot complete: booking_id=%s, status=%s",
				bookingID, transitionErr.From)
			handlers.RespondConflict(w, msgCannotComplete)

		case errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/complete - Invalid request data: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings/{id}/complete - Failed to complete booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/complete - Booking completed successfully: booking_id=%s, actual_cost=%.2f",
		bookingID, req.ActualCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
