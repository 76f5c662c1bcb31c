package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/internal/service/bookings/models"
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

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.VehicleID != nil && b.VehicleID != *filter.VehicleID {
			continue
		}
		if filter.ServiceCenterID != nil && b.ServiceCenterID != *filter.ServiceCenterID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.ServiceType != nil && b.ServiceType != *filter.ServiceType {
			continue
		}
		if filter.FromDate != nil && b.BookingDate.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && b.BookingDate.After(*filter.ToDate) {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, b := range f.bookings {
		if b.ID == booking.ID {
			copied := *booking
			f.bookings[i] = &copied
			result := copied
			return &result, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeCustomerRepo struct {
	customers []*domain.Customer
	err       error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		CustomerID:      "c-1",
		VehicleID:       "v-1",
		ServiceCenterID: "sc-1",
		ServiceType:     domain.ServiceOilChange,
		Status:          status,
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		ScheduledTime:   types.TimeString("14:30"),
		EstimatedCost:   ptr.Ptr(94.50),
		CreatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        "c-1",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Phone:     "5551234567",
	}
}

func newTestService(bookings *fakeBookingRepo, customers *fakeCustomerRepo, dispatcher *fakeDispatcher) *Service {
	return NewService(bookings, customers, lifecycle.NewEngine(""), dispatcher, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.GetByID(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "OIL_CHANGE", resp.ServiceType)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "14:30", resp.ScheduledTime)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.GetByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, resp)
}

func TestService_List(t *testing.T) {
	first := testBooking("b-1", domain.StatusPending)
	second := testBooking("b-2", domain.StatusConfirmed)
	second.ServiceType = domain.ServiceBrakeService
	third := testBooking("b-3", domain.StatusPending)
	third.ServiceCenterID = "sc-2"
	repo := &fakeBookingRepo{bookings: []*domain.Booking{first, second, third}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		ServiceCenterID: ptr.Ptr("sc-1"),
		Status:          ptr.Ptr("PENDING"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b-1", resp.Bookings[0].ID)
}

func TestService_List_DateRange(t *testing.T) {
	first := testBooking("b-1", domain.StatusPending)
	second := testBooking("b-2", domain.StatusPending)
	second.BookingDate = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{first, second}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		FromDate: ptr.Ptr("2025-11-01"),
		ToDate:   ptr.Ptr("2025-11-30"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b-2", resp.Bookings[0].ID)
}

func TestService_List_InvalidFilter(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("NOT_A_STATUS"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestService_ListByCustomer(t *testing.T) {
	first := testBooking("b-1", domain.StatusPending)
	second := testBooking("b-2", domain.StatusCompleted)
	third := testBooking("b-3", domain.StatusPending)
	third.CustomerID = "c-2"
	repo := &fakeBookingRepo{bookings: []*domain.Booking{first, second, third}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.ListByCustomer(context.Background(), "c-1", nil)

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.ListByCustomer(context.Background(), "c-1", ptr.Ptr("completed"))

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b-2", resp.Bookings[0].ID)
}

func TestService_ListByCustomer_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.ListByCustomer(context.Background(), "c-1", ptr.Ptr("WAITING"))

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestService_Update(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusInProgress)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		ActualCost: ptr.Ptr(120.0),
		Notes:      ptr.Ptr("replaced oil filter"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.ActualCost)
	assert.Equal(t, 120.0, *resp.ActualCost)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "replaced oil filter", *resp.Notes)
	assert.Equal(t, "IN_PROGRESS", resp.Status)
}

func TestService_Update_Reschedule(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		BookingDate:   ptr.Ptr("2025-10-20"),
		ScheduledTime: ptr.Ptr("09:15"),
		ServiceType:   ptr.Ptr("brake_service"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", resp.BookingDate)
	assert.Equal(t, "09:15", resp.ScheduledTime)
	assert.Equal(t, "BRAKE_SERVICE", resp.ServiceType)
}

func TestService_Update_StatusTransition(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: ptr.Ptr("CONFIRMED"),
	})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestService_Update_IllegalTransition(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: ptr.Ptr("COMPLETED"),
	})

	require.Error(t, err)
	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.StatusPending, transitionErr.From)
	assert.Equal(t, domain.StatusCompleted, transitionErr.To)
	assert.Nil(t, resp)
}

func TestService_Update_SameStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: ptr.Ptr("PENDING"),
		Notes:  ptr.Ptr("unchanged status"),
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		Status: ptr.Ptr("WAITING"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_NegativeActualCost(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusInProgress)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		ActualCost: ptr.Ptr(-10.0),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_InvalidDate(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		BookingDate: ptr.Ptr("15-10-2025"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.Update(context.Background(), "missing", &models.UpdateBookingRequest{})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, &fakeCustomerRepo{customers: []*domain.Customer{testCustomer()}}, dispatcher)

	err := svc.Cancel(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[0].Status)

	require.Len(t, dispatcher.intents, 2)
	notice, ok := dispatcher.intents[0].(lifecycle.NoticeIntent)
	require.True(t, ok)
	assert.Equal(t, lifecycle.NoticeBookingCancellation, notice.Type)
	assert.Equal(t, "ivan@example.com", notice.RecipientEmail)
	deschedule, ok := dispatcher.intents[1].(lifecycle.DescheduleIntent)
	require.True(t, ok)
	assert.Equal(t, "vehicle-service-reminders-b-1", deschedule.RuleKey)
}

func TestService_Cancel_Completed(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusCompleted)}}
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, &fakeCustomerRepo{customers: []*domain.Customer{testCustomer()}}, dispatcher)

	err := svc.Cancel(context.Background(), "b-1")

	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[0].Status)
	assert.Empty(t, dispatcher.intents)
}

func TestService_Cancel_CustomerNotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	err := svc.Cancel(context.Background(), "b-1")

	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, domain.StatusPending, repo.bookings[0].Status)
}

func TestService_Cancel_RepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	err := svc.Cancel(context.Background(), "b-1")

	require.ErrorIs(t, err, ErrInternal)
}

func TestService_EstimateCost(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		EstimatedHours: 1.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "OIL_CHANGE", resp.ServiceType)
	assert.Equal(t, 50.0, resp.Breakdown.BaseServiceCost)
	assert.Equal(t, 112.5, resp.Breakdown.LaborCost)
	assert.Equal(t, 162.5, resp.Breakdown.Subtotal)
	assert.Equal(t, 13.0, resp.Breakdown.Tax)
	assert.Equal(t, "8.0%", resp.Breakdown.TaxRate)
	assert.Equal(t, 175.5, resp.EstimatedTotal)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, 0.5, resp.Duration.EstimatedDurationHours)
	assert.Equal(t, 30, resp.Duration.EstimatedDurationMinutes)
	assert.Nil(t, resp.BulkDiscount)
	assert.Nil(t, resp.MembershipDiscount)
}

func TestService_EstimateCost_DefaultHours(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1.5, resp.Breakdown.EstimatedHours)
	assert.Equal(t, 175.5, resp.EstimatedTotal)
}

func TestService_EstimateCost_Surcharges(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		EstimatedHours:      2.0,
		IsWeekend:           true,
		IsUrgent:            true,
		AdditionalPartsCost: 100.0,
	})

	require.NoError(t, err)
	// base 50 + labor 150 + parts 100 = 300, weekend 45, urgent 50, tax 31.60
	assert.Equal(t, 300.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 45.0, resp.Breakdown.WeekendSurcharge)
	assert.Equal(t, 50.0, resp.Breakdown.UrgentSurcharge)
	assert.Equal(t, 31.6, resp.Breakdown.Tax)
	assert.Equal(t, 426.6, resp.EstimatedTotal)
}

func TestService_EstimateCost_BulkDiscount(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		EstimatedHours: 1.5,
		NumServices:    3,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.BulkDiscount)
	assert.Equal(t, 175.5, resp.BulkDiscount.OriginalCost)
	assert.Equal(t, 3, resp.BulkDiscount.NumServices)
	assert.Equal(t, "10.0%", resp.BulkDiscount.DiscountRate)
	assert.Equal(t, 17.55, resp.BulkDiscount.DiscountAmount)
	assert.Equal(t, 157.95, resp.BulkDiscount.FinalCost)
	assert.Equal(t, 17.55, resp.BulkDiscount.Savings)
}

func TestService_EstimateCost_MembershipDiscount(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		EstimatedHours: 1.5,
		MembershipTier: "silver",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.MembershipDiscount)
	assert.Equal(t, "SILVER", resp.MembershipDiscount.MembershipTier)
	assert.Equal(t, "10.0%", resp.MembershipDiscount.DiscountRate)
	assert.Equal(t, 17.55, resp.MembershipDiscount.DiscountAmount)
	assert.Equal(t, 157.95, resp.MembershipDiscount.FinalCost)
	assert.Nil(t, resp.BulkDiscount)
}

func TestService_EstimateCost_SingleServiceNoBulk(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking("b-1", domain.StatusPending)}}
	svc := newTestService(repo, &fakeCustomerRepo{}, &fakeDispatcher{})

	resp, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		EstimatedHours: 1.5,
		NumServices:    1,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.BulkDiscount)
}

func TestService_EstimateCost_NegativePartsCost(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.EstimateCost(context.Background(), "b-1", &models.EstimateCostRequest{
		AdditionalPartsCost: -5.0,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_EstimateCost_BookingNotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeCustomerRepo{}, &fakeDispatcher{})

	_, err := svc.EstimateCost(context.Background(), "missing", &models.EstimateCostRequest{})

	require.ErrorIs(t, err, ErrBookingNotFound)
}
