package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidData           = "некорректные данные бронирования"
	msgInvalidDate           = "некорректная дата бронирования"
	msgCustomerNotFound      = "клиент не найден"
	msgVehicleNotFound       = "автомобиль не найден"
	msgVehicleNotOwned       = "автомобиль не принадлежит клиенту"
	msgServiceCenterNotFound = "сервисный центр не найден"
	msgServiceNotOffered     = "сервисный центр не оказывает эту услугу"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: customer_id=%s, date=%s", req.CustomerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request data: customer_id=%s", req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotOwned):
			h.logger.Warn("POST /bookings - Vehicle not owned by customer: customer_id=%s, vehicle_id=%s",
				req.CustomerID, req.VehicleID)
			handlers.RespondBadRequest(w, msgVehicleNotOwned)

		case errors.Is(err, createBooking.ErrServiceCenterNotFound):
			h.logger.Warn("POST /bookings - Service center not found: service_center_id=%s", req.ServiceCenterID)
			handlers.RespondNotFound(w, msgServiceCenterNotFound)

		case errors.Is(err, createBooking.ErrServiceNotOffered):
			h.logger.Warn("POST /bookings - Service not offered: service_center_id=%s, service_type=%s",
				req.ServiceCenterID, req.ServiceType)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%s, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, customer_id=%s",
		result.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
