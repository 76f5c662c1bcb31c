package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleService/pkg/psqlbuilder"
)

var vehicleColumns = []string{
	"id",
	"customer_id",
	"registration_number",
	"vin",
	"make",
	"model",
	"year",
	"color",
	"mileage",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автомобиль
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"id",
			"customer_id",
			"registration_number",
			"vin",
			"make",
			"model",
			"year",
			"color",
			"mileage",
		).
		Values(
			vehicle.ID,
			vehicle.CustomerID,
			vehicle.RegistrationNumber,
			vehicle.VIN,
			vehicle.Make,
			vehicle.Model,
			vehicle.Year,
			vehicle.Color,
			vehicle.Mileage,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return vehicle, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	vehicle, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return vehicle, nil
}

// GetByCustomerID получает список автомобилей клиента
func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerID - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

// Update обновляет данные автомобиля
func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("registration_number", vehicle.RegistrationNumber).
		Set("vin", vehicle.VIN).
		Set("make", vehicle.Make).
		Set("model", vehicle.Model).
		Set("year", vehicle.Year).
		Set("color", vehicle.Color).
		Set("mileage", vehicle.Mileage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vehicle.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	vehicle.UpdatedAt = updatedAt.Time

	return vehicle, nil
}

// Delete удаляет автомобиль
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&vehicle.ID,
		&vehicle.CustomerID,
		&vehicle.RegistrationNumber,
		&vehicle.VIN,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Color,
		&vehicle.Mileage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return &vehicle, nil
}
