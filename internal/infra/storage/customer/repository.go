package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"address",
	"city",
	"state",
	"zip_code",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"address",
			"city",
			"state",
			"zip_code",
		).
		Values(
			customer.ID,
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.Phone,
			customer.Address,
			customer.City,
			customer.State,
			customer.ZipCode,
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

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getByField(ctx, "id", id, "GetByID")
}

// GetByEmail получает клиента по email
// Используется для проверки уникальности при регистрации
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getByField(ctx, "email", email, "GetByEmail")
}

func (r *Repository) getByField(ctx context.Context, field, value, op string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{field: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	customer, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	return customer, nil
}

// List получает список всех клиентов
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}

// Update обновляет данные клиента
func (r *Repository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("address", customer.Address).
		Set("city", customer.City).
		Set("state", customer.State).
		Set("zip_code", customer.ZipCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("customers").
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
		return ErrCustomerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.City,
		&customer.State,
		&customer.ZipCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}
