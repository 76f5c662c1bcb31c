package complete_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/pkg/ptr"
	"github.com/m04kA/SMC-VehicleService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) Complete(_ context.Context, id string, status domain.BookingStatus, actualCost float64) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			b.ActualCost = ptr.Ptr(actualCost)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeCustomerRepo struct {
	customers []*domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type fakeDispatcher struct {
	intents []lifecycle.Intent
}

func (f *fakeDispatcher) Dispatch(_ context.Context, intents []lifecycle.Intent) {
	f.intents = append(f.intents, intents...)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              "b-1",
		CustomerID:      "c-1",
		VehicleID:       "v-1",
		ServiceCenterID: "sc-1",
		ServiceType:     domain.ServiceBrakeService,
		Status:          status,
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		ScheduledTime:   types.TimeString("14:30"),
		EstimatedCost:   ptr.Ptr(283.5),
		CreatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

type fixture struct {
	uc         *UseCase
	bookings   *fakeBookingRepo
	dispatcher *fakeDispatcher
	txManager  *fakeTxManager
}

func newFixture(status domain.BookingStatus) *fixture {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{testBooking(status)}}
	customers := &fakeCustomerRepo{customers: []*domain.Customer{{
		ID:    "c-1",
		Email: "ivan@example.com",
	}}}
	dispatcher := &fakeDispatcher{}
	txManager := &fakeTxManager{}

	uc := NewUseCase(bookings, customers, lifecycle.NewEngine(""), dispatcher, txManager, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC)}

	return &fixture{uc: uc, bookings: bookings, dispatcher: dispatcher, txManager: txManager}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(domain.StatusInProgress)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 310.0})

	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
	require.NotNil(t, resp.ActualCost)
	assert.Equal(t, 310.0, *resp.ActualCost)
	assert.Equal(t, time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC), resp.UpdatedAt)

	assert.Equal(t, domain.StatusCompleted, f.bookings.bookings[0].Status)
	require.NotNil(t, f.bookings.bookings[0].ActualCost)
	assert.Equal(t, 310.0, *f.bookings.bookings[0].ActualCost)
	assert.Equal(t, 1, f.txManager.calls)
}

func TestUseCase_Execute_DispatchesIntents(t *testing.T) {
	f := newFixture(domain.StatusInProgress)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 310.0})

	require.NoError(t, err)
	require.Len(t, f.dispatcher.intents, 3)

	notice, ok := f.dispatcher.intents[0].(lifecycle.NoticeIntent)
	require.True(t, ok)
	assert.Equal(t, lifecycle.NoticeServiceCompletion, notice.Type)
	assert.Equal(t, "ivan@example.com", notice.RecipientEmail)

	enqueue, ok := f.dispatcher.intents[1].(lifecycle.EnqueueIntent)
	require.True(t, ok)
	assert.Equal(t, lifecycle.QueueServiceCompletion, enqueue.Type)
	assert.Equal(t, "310.00", enqueue.Payload["actual_cost"])

	followUp, ok := f.dispatcher.intents[2].(lifecycle.ScheduleIntent)
	require.True(t, ok)
	assert.Equal(t, "vehicle-service-reminders-followup-b-1", followUp.RuleKey)
	assert.Equal(t, time.Date(2025, 10, 22, 16, 45, 0, 0, time.UTC), followUp.FireAt)
}

func TestUseCase_Execute_FromPending(t *testing.T) {
	f := newFixture(domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 100.0})

	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.StatusPending, transitionErr.From)
	assert.Equal(t, domain.StatusCompleted, transitionErr.To)

	assert.Equal(t, domain.StatusPending, f.bookings.bookings[0].Status)
	assert.Empty(t, f.dispatcher.intents)
}

func TestUseCase_Execute_AlreadyCompleted(t *testing.T) {
	f := newFixture(domain.StatusCompleted)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 100.0})

	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Empty(t, f.dispatcher.intents)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(domain.StatusInProgress)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "missing", ActualCost: 100.0})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_CustomerNotFound(t *testing.T) {
	f := newFixture(domain.StatusInProgress)
	f.bookings.bookings[0].CustomerID = "ghost"

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 100.0})

	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, domain.StatusInProgress, f.bookings.bookings[0].Status)
}

func TestUseCase_Execute_NegativeCost(t *testing.T) {
	f := newFixture(domain.StatusInProgress)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: -1.0})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, f.txManager.calls)
}

func TestUseCase_Execute_MissingBookingID(t *testing.T) {
	f := newFixture(domain.StatusInProgress)

	_, err := f.uc.Execute(context.Background(), &Request{ActualCost: 100.0})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepoError(t *testing.T) {
	f := newFixture(domain.StatusInProgress)
	f.bookings.err = bookingRepo.ErrExecQuery

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "b-1", ActualCost: 100.0})

	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.dispatcher.intents)
}
