package get_booking_cost

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-VehicleService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос расчета стоимости из query параметров.
// Query params: estimated_hours, is_weekend, is_urgent, parts_cost,
// num_services, membership_tier (все опциональны).
func ToServiceRequest(query url.Values) (*models.EstimateCostRequest, error) {
	req := &models.EstimateCostRequest{}

	if v := query.Get("estimated_hours"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.EstimatedHours = hours
	}

	if v := query.Get("is_weekend"); v != "" {
		isWeekend, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IsWeekend = isWeekend
	}

	if v := query.Get("is_urgent"); v != "" {
		isUrgent, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IsUrgent = isUrgent
	}

	if v := query.Get("parts_cost"); v != "" {
		partsCost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.AdditionalPartsCost = partsCost
	}

	if v := query.Get("num_services"); v != "" {
		numServices, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.NumServices = numServices
	}

	req.MembershipTier = query.Get("membership_tier")

	return req, nil
}
