package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	"github.com/m04kA/SMC-VehicleService/internal/service/vehicles/models"
	"github.com/m04kA/SMC-VehicleService/pkg/ptr"
)

type fakeVehicleRepo struct {
	vehicles []*domain.Vehicle
	err      error
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *vehicle
	f.vehicles = append(f.vehicles, &stored)
	return &stored, nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.vehicles {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicleRepo) GetByCustomerID(_ context.Context, customerID string) ([]*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Vehicle
	for _, v := range f.vehicles {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, v := range f.vehicles {
		if v.ID == vehicle.ID {
			stored := *vehicle
			f.vehicles[i] = &stored
			return &stored, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, v := range f.vehicles {
		if v.ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return vehicleRepo.ErrVehicleNotFound
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

func newTestService(vehicles []*domain.Vehicle, customers []*domain.Customer) (*Service, *fakeVehicleRepo, *fakeDispatcher) {
	vr := &fakeVehicleRepo{vehicles: vehicles}
	cr := &fakeCustomerRepo{customers: customers}
	disp := &fakeDispatcher{}
	return NewService(vr, cr, lifecycle.NewEngine(""), disp, nopLogger{}), vr, disp
}

func testOwner() *domain.Customer {
	return &domain.Customer{ID: "c-1", FirstName: "Ivan", Email: "ivan@example.com"}
}

func TestService_Create(t *testing.T) {
	svc, repo, _ := newTestService(nil, []*domain.Customer{testOwner()})

	resp, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		CustomerID:         "c-1",
		RegistrationNumber: "abc-1234",
		Make:               "Toyota",
		Model:              "Camry",
		Year:               2021,
		VIN:                ptr.Ptr("1hgbh41jxmn109186"),
		Mileage:            ptr.Ptr(12000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ABC-1234", resp.RegistrationNumber, "registration must be stored uppercased")
	require.NotNil(t, resp.VIN)
	assert.Equal(t, "1HGBH41JXMN109186", *resp.VIN, "VIN must be stored uppercased")
	assert.Equal(t, 12000, resp.Mileage)
	require.Len(t, repo.vehicles, 1)
}

func TestService_Create_InvalidRegistration(t *testing.T) {
	svc, repo, _ := newTestService(nil, []*domain.Customer{testOwner()})

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		CustomerID:         "c-1",
		RegistrationNumber: "12345",
		Make:               "Toyota",
		Model:              "Camry",
		Year:               2021,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Invalid registration number format")
	assert.Empty(t, repo.vehicles)
}

func TestService_Create_InvalidVIN(t *testing.T) {
	svc, _, _ := newTestService(nil, []*domain.Customer{testOwner()})

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		CustomerID:         "c-1",
		RegistrationNumber: "ABC-1234",
		Make:               "Toyota",
		Model:              "Camry",
		Year:               2021,
		VIN:                ptr.Ptr("TOOSHORT"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "must be 17 characters")
}

func TestService_Create_YearTooOld(t *testing.T) {
	svc, _, _ := newTestService(nil, []*domain.Customer{testOwner()})

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		CustomerID:         "c-1",
		RegistrationNumber: "ABC-1234",
		Make:               "Ford",
		Model:              "Model T",
		Year:               1899,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_CustomerNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		CustomerID:         "missing",
		RegistrationNumber: "ABC-1234",
		Make:               "Toyota",
		Model:              "Camry",
		Year:               2021,
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", RegistrationNumber: "ABC-1234", Make: "Toyota", Model: "Camry", Year: 2021},
	}, nil)

	resp, err := svc.GetByID(context.Background(), "v-1")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", resp.Make)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_ListByCustomer(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Make: "Toyota"},
		{ID: "v-2", CustomerID: "c-2", Make: "Honda"},
		{ID: "v-3", CustomerID: "c-1", Make: "Ford"},
	}, nil)

	resp, err := svc.ListByCustomer(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 2)
	assert.Equal(t, "v-1", resp.Vehicles[0].ID)
	assert.Equal(t, "v-3", resp.Vehicles[1].ID)
}

func TestService_Update(t *testing.T) {
	svc, repo, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Make: "Toyota", Mileage: 10000},
	}, nil)

	resp, err := svc.Update(context.Background(), "v-1", &models.UpdateVehicleRequest{
		Color:   ptr.Ptr("red"),
		Mileage: ptr.Ptr(15000),
	})
	require.NoError(t, err)

	assert.Equal(t, 15000, resp.Mileage)
	require.NotNil(t, resp.Color)
	assert.Equal(t, "red", *resp.Color)
	assert.Equal(t, "Toyota", resp.Make, "unset fields keep their values")
	assert.Equal(t, 15000, repo.vehicles[0].Mileage)
}

func TestService_Update_NegativeMileage(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Mileage: 10000},
	}, nil)

	_, err := svc.Update(context.Background(), "v-1", &models.UpdateVehicleRequest{
		Mileage: ptr.Ptr(-1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1"},
	}, nil)

	require.NoError(t, svc.Delete(context.Background(), "v-1"))
	assert.Empty(t, repo.vehicles)

	assert.ErrorIs(t, svc.Delete(context.Background(), "v-1"), ErrVehicleNotFound)
}

func TestService_Validate(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", RegistrationNumber: "ABC-1234", VIN: ptr.Ptr("1HGBH41JXMN109186")},
	}, nil)

	resp, err := svc.Validate(context.Background(), "v-1")
	require.NoError(t, err)

	assert.Equal(t, "v-1", resp.VehicleID)
	assert.True(t, resp.RegistrationValidation.IsValid)
	assert.Equal(t, "ABC-1234", resp.RegistrationValidation.Normalized)
	assert.True(t, resp.VINValidation.IsValid)
	assert.Equal(t, "Valid VIN", resp.VINValidation.Message)
}

func TestService_Validate_NoVIN(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", RegistrationNumber: "bad plate"},
	}, nil)

	resp, err := svc.Validate(context.Background(), "v-1")
	require.NoError(t, err)

	assert.False(t, resp.RegistrationValidation.IsValid)
	assert.Equal(t, "Invalid registration number format", resp.RegistrationValidation.Message)
	assert.True(t, resp.VINValidation.IsValid)
	assert.Equal(t, "No VIN provided", resp.VINValidation.Message)
}

func TestService_Eligibility(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Mileage: 12000},
	}, nil)

	resp, err := svc.Eligibility(context.Background(), "v-1", domain.ServiceOilChange, 5000)
	require.NoError(t, err)

	assert.True(t, resp.IsEligible)
	assert.Equal(t, 12000, resp.CurrentMileage)
	assert.Equal(t, 7000, resp.MileageSinceLastService)
	assert.Equal(t, 3000, resp.RequiredMileage)
	assert.Equal(t, "Vehicle is eligible for service", resp.Message)
}

func TestService_Eligibility_NotEnoughMileage(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Mileage: 13000},
	}, nil)

	resp, err := svc.Eligibility(context.Background(), "v-1", domain.ServiceBrakeService, 11000)
	require.NoError(t, err)

	assert.False(t, resp.IsEligible)
	assert.Equal(t, "Vehicle needs 8000 more miles before next service", resp.Message)
}

func TestService_Eligibility_UnknownServiceType(t *testing.T) {
	svc, _, _ := newTestService([]*domain.Vehicle{
		{ID: "v-1", CustomerID: "c-1", Mileage: 13000},
	}, nil)

	_, err := svc.Eligibility(context.Background(), "v-1", domain.ServiceType("CAR_WASH"), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ScheduleMaintenance(t *testing.T) {
	svc, _, disp := newTestService(
		[]*domain.Vehicle{{ID: "v-1", CustomerID: "c-1"}},
		[]*domain.Customer{testOwner()},
	)

	resp, err := svc.ScheduleMaintenance(context.Background(), "v-1", 30)
	require.NoError(t, err)

	assert.Equal(t, "v-1", resp.VehicleID)
	assert.Equal(t, "vehicle-service-reminders-maintenance-v-1", resp.RuleKey)
	assert.Equal(t, 30, resp.IntervalDays)
	assert.WithinDuration(t, time.Now().UTC().Add(30*24*time.Hour), resp.FirstReminderAt, time.Minute)

	require.Len(t, disp.intents, 1)
	schedule, ok := disp.intents[0].(lifecycle.ScheduleIntent)
	require.True(t, ok)
	assert.Equal(t, resp.RuleKey, schedule.RuleKey)
	assert.Equal(t, 30*24*time.Hour, schedule.Repeat)
	assert.Equal(t, "ivan@example.com", schedule.Notice.RecipientEmail)
}

func TestService_ScheduleMaintenance_DefaultInterval(t *testing.T) {
	svc, _, disp := newTestService(
		[]*domain.Vehicle{{ID: "v-1", CustomerID: "c-1"}},
		[]*domain.Customer{testOwner()},
	)

	resp, err := svc.ScheduleMaintenance(context.Background(), "v-1", 0)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.DefaultMaintenanceIntervalDays, resp.IntervalDays)
	require.Len(t, disp.intents, 1)
}

func TestService_ScheduleMaintenance_VehicleNotFound(t *testing.T) {
	svc, _, disp := newTestService(nil, []*domain.Customer{testOwner()})

	_, err := svc.ScheduleMaintenance(context.Background(), "missing", 30)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.Empty(t, disp.intents)
}
