package get_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-VehicleService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Пустые параметры опускаются, валидацию значений выполняет сервис.
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}

	if v := query.Get("customer_id"); v != "" {
		req.CustomerID = &v
	}
	if v := query.Get("vehicle_id"); v != "" {
		req.VehicleID = &v
	}
	if v := query.Get("service_center_id"); v != "" {
		req.ServiceCenterID = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("service_type"); v != "" {
		req.ServiceType = &v
	}
	if v := query.Get("from_date"); v != "" {
		req.FromDate = &v
	}
	if v := query.Get("to_date"); v != "" {
		req.ToDate = &v
	}

	return req
}
