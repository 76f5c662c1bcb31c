package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings"
)

type fakeService struct {
	err error

	gotID string
}

func (f *fakeService) Cancel(_ context.Context, id string) error {
	f.gotID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patchCancel(h *Handler, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := patchCancel(h, "b-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", svc.gotID)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeService{err: bookings.ErrBookingNotFound}, nopLogger{})

	rec := patchCancel(h, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHandle_TerminalStatus(t *testing.T) {
	transitionErr := &domain.TransitionError{From: domain.StatusCompleted, To: domain.StatusCancelled}
	h := NewHandler(&fakeService{err: transitionErr}, nopLogger{})

	rec := patchCancel(h, "b-1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeService{err: bookings.ErrInternal}, nopLogger{})

	rec := patchCancel(h, "b-1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
