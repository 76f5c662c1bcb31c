package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-VehicleService/internal/service/customers/models"
	"github.com/m04kA/SMC-VehicleService/pkg/ptr"
)

type fakeCustomerRepo struct {
	customers []*domain.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *customer
	f.customers = append(f.customers, &stored)
	return &stored, nil
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

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.customers {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, c := range f.customers {
		if c.ID == customer.ID {
			stored := *customer
			f.customers[i] = &stored
			return &stored, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.customers {
		if c.ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return customerRepo.ErrCustomerNotFound
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
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
		out = append(out, b)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(custs []*domain.Customer, bookings []*domain.Booking) (*Service, *fakeCustomerRepo, *fakeBookingRepo) {
	cr := &fakeCustomerRepo{customers: custs}
	br := &fakeBookingRepo{bookings: bookings}
	return NewService(cr, br, nopLogger{}), cr, br
}

func TestService_Create(t *testing.T) {
	svc, repo, _ := newTestService(nil, nil)

	resp, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Phone:     "(555) 123-4567",
		City:      ptr.Ptr("Springfield"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ivan", resp.FirstName)
	assert.Equal(t, "Petrov", resp.LastName)
	assert.Equal(t, "ivan@example.com", resp.Email)
	assert.Equal(t, "5551234567", resp.Phone, "phone must be stored in normalized form")
	require.NotNil(t, resp.City)
	assert.Equal(t, "Springfield", *resp.City)
	assert.Nil(t, resp.Address)

	require.Len(t, repo.customers, 1)
	assert.Equal(t, resp.ID, repo.customers[0].ID)
}

func TestService_Create_RequiredFields(t *testing.T) {
	base := func() *models.CreateCustomerRequest {
		return &models.CreateCustomerRequest{
			FirstName: "Ivan",
			LastName:  "Petrov",
			Email:     "ivan@example.com",
			Phone:     "5551234567",
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.CreateCustomerRequest)
	}{
		{"missing first name", func(r *models.CreateCustomerRequest) { r.FirstName = "  " }},
		{"missing last name", func(r *models.CreateCustomerRequest) { r.LastName = "" }},
		{"missing email", func(r *models.CreateCustomerRequest) { r.Email = "" }},
		{"missing phone", func(r *models.CreateCustomerRequest) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(nil, nil)
			req := base()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.customers)
		})
	}
}

func TestService_Create_InvalidPhone(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Phone:     "12345",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Invalid phone number format")
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Anna", LastName: "Smirnova", Email: "ivan@example.com", Phone: "5550000000"},
	}, nil)

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Phone:     "5551234567",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com", Phone: "5551234567"},
	}, nil)

	resp, err := svc.GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Ivan", resp.FirstName)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_List(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com"},
		{ID: "c-2", FirstName: "Anna", Email: "anna@example.com"},
	}, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Customers, 2)
	assert.Equal(t, "c-1", resp.Customers[0].ID)
	assert.Equal(t, "c-2", resp.Customers[1].ID)
}

func TestService_Update(t *testing.T) {
	svc, repo, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com", Phone: "5551234567"},
	}, nil)

	resp, err := svc.Update(context.Background(), "c-1", &models.UpdateCustomerRequest{
		Phone: ptr.Ptr("(555) 987-6543"),
		City:  ptr.Ptr("Shelbyville"),
	})
	require.NoError(t, err)

	assert.Equal(t, "5559876543", resp.Phone)
	require.NotNil(t, resp.City)
	assert.Equal(t, "Shelbyville", *resp.City)
	assert.Equal(t, "Ivan", resp.FirstName, "unset fields keep their values")
	assert.Equal(t, "ivan@example.com", resp.Email)

	assert.Equal(t, "5559876543", repo.customers[0].Phone)
}

func TestService_Update_InvalidPhone(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com", Phone: "5551234567"},
	}, nil)

	_, err := svc.Update(context.Background(), "c-1", &models.UpdateCustomerRequest{
		Phone: ptr.Ptr("nope"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_EmailTaken(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com", Phone: "5551234567"},
		{ID: "c-2", FirstName: "Anna", Email: "anna@example.com", Phone: "5550000000"},
	}, nil)

	_, err := svc.Update(context.Background(), "c-1", &models.UpdateCustomerRequest{
		Email: ptr.Ptr("anna@example.com"),
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Update_KeepsOwnEmail(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com", Phone: "5551234567"},
	}, nil)

	resp, err := svc.Update(context.Background(), "c-1", &models.UpdateCustomerRequest{
		FirstName: ptr.Ptr("Ivan Jr"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ivan Jr", resp.FirstName)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	_, err := svc.Update(context.Background(), "missing", &models.UpdateCustomerRequest{
		FirstName: ptr.Ptr("Ivan"),
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService([]*domain.Customer{
		{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com"},
	}, nil)

	require.NoError(t, svc.Delete(context.Background(), "c-1"))
	assert.Empty(t, repo.customers)

	assert.ErrorIs(t, svc.Delete(context.Background(), "c-1"), ErrCustomerNotFound)
}

func TestService_History(t *testing.T) {
	svc, _, _ := newTestService(
		[]*domain.Customer{
			{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com"},
		},
		[]*domain.Booking{
			{ID: "b-1", CustomerID: "c-1", ServiceType: domain.ServiceOilChange, Status: domain.StatusCompleted, ActualCost: ptr.Ptr(55.0)},
			{ID: "b-2", CustomerID: "c-1", ServiceType: domain.ServiceOilChange, Status: domain.StatusCompleted, ActualCost: ptr.Ptr(60.0)},
			{ID: "b-3", CustomerID: "c-1", ServiceType: domain.ServiceBrakeService, Status: domain.StatusPending, EstimatedCost: ptr.Ptr(185.0)},
			{ID: "b-4", CustomerID: "other", ServiceType: domain.ServiceFullService, Status: domain.StatusCompleted, ActualCost: ptr.Ptr(400.0)},
		},
	)

	resp, err := svc.History(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalServices)
	assert.Equal(t, 300.0, resp.TotalAmountSpent)
	assert.Equal(t, 100.0, resp.AverageServiceCost)
	assert.Equal(t, map[string]int{"OIL_CHANGE": 2, "BRAKE_SERVICE": 1}, resp.ServicesByType)
	assert.Equal(t, "OIL_CHANGE", resp.MostFrequentService)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestService_History_CustomerNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	_, err := svc.History(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
