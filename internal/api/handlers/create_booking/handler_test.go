package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/pkg/types"

	createBooking "github.com/m04kA/SMC-VehicleService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	cost := 175.5
	scheduledTime, err := types.NewTimeStringFromString("14:30")
	require.NoError(t, err)

	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:              "b-1",
			CustomerID:      "c-1",
			VehicleID:       "v-1",
			ServiceCenterID: "sc-1",
			ServiceType:     "OIL_CHANGE",
			Status:          "PENDING",
			BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			ScheduledTime:   scheduledTime,
			EstimatedCost:   &cost,
			CreatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, `{
		"customer_id": "c-1",
		"vehicle_id": "v-1",
		"service_center_id": "sc-1",
		"service_type": "OIL_CHANGE",
		"booking_date": "2025-10-15",
		"scheduled_time": "14:30"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "c-1", uc.gotReq.CustomerID)
	assert.Equal(t, "2025-10-15", uc.gotReq.BookingDate)
	assert.Equal(t, "14:30", uc.gotReq.ScheduledTime)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "14:30", resp.ScheduledTime)
	require.NotNil(t, resp.EstimatedCost)
	assert.InDelta(t, 175.5, *resp.EstimatedCost, 0.001)
	assert.Equal(t, "2025-10-01T09:00:00Z", resp.CreatedAt)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, `{"customer_id": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid date", err: createBooking.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "customer not found", err: createBooking.ErrCustomerNotFound, want: http.StatusNotFound},
		{name: "vehicle not found", err: createBooking.ErrVehicleNotFound, want: http.StatusNotFound},
		{name: "vehicle not owned", err: createBooking.ErrVehicleNotOwned, want: http.StatusBadRequest},
		{name: "center not found", err: createBooking.ErrServiceCenterNotFound, want: http.StatusNotFound},
		{name: "service not offered", err: createBooking.ErrServiceNotOffered, want: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := postBooking(t, h, `{"customer_id": "c-1"}`)

			assert.Equal(t, tt.want, rec.Code)

			var envelope struct {
				Error struct {
					Code    int    `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.want, envelope.Error.Code)
			assert.NotEmpty(t, envelope.Error.Message)
		})
	}
}
