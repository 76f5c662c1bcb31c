package servicecenter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleService/pkg/psqlbuilder"
)

var centerColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"state",
	"zip_code",
	"phone",
	"email",
	"services_offered",
	"working_hours",
	"rating",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сервисными центрами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сервисных центров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый сервисный центр
// Список услуг хранится как text[], пустой список допустим
func (r *Repository) Create(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_centers").
		Columns(
			"id",
			"name",
			"address",
			"city",
			"state",
			"zip_code",
			"phone",
			"email",
			"services_offered",
			"working_hours",
			"rating",
		).
		Values(
			center.ID,
			center.Name,
			center.Address,
			center.City,
			center.State,
			center.ZipCode,
			center.Phone,
			center.Email,
			pq.Array(servicesToStrings(center.ServicesOffered)),
			center.WorkingHours,
			center.Rating,
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

	center.CreatedAt = createdAt.Time
	center.UpdatedAt = updatedAt.Time

	return center, nil
}

// GetByID получает сервисный центр по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centerColumns...).
		From("service_centers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	center, err := scanCenter(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceCenterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service center: %v", ErrScanRow, err)
	}

	return center, nil
}

// List получает список сервисных центров
// Опционально фильтрует по городу и предлагаемой услуге
func (r *Repository) List(ctx context.Context, city *string, serviceType *domain.ServiceType) ([]*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(centerColumns...).
		From("service_centers").
		OrderBy("name ASC")

	if city != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *city})
	}
	if serviceType != nil {
		selectBuilder = selectBuilder.Where("? = ANY(services_offered)", string(*serviceType))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centers := make([]*domain.ServiceCenter, 0)
	for rows.Next() {
		center, err := scanCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		centers = append(centers, center)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return centers, nil
}

// Update обновляет данные сервисного центра
func (r *Repository) Update(ctx context.Context, center *domain.ServiceCenter) (*domain.ServiceCenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_centers").
		Set("name", center.Name).
		Set("address", center.Address).
		Set("city", center.City).
		Set("state", center.State).
		Set("zip_code", center.ZipCode).
		Set("phone", center.Phone).
		Set("email", center.Email).
		Set("services_offered", pq.Array(servicesToStrings(center.ServicesOffered))).
		Set("working_hours", center.WorkingHours).
		Set("rating", center.Rating).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": center.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrServiceCenterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	center.UpdatedAt = updatedAt.Time

	return center, nil
}

// Delete удаляет сервисный центр
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_centers").
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
		return ErrServiceCenterNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCenter(row rowScanner) (*domain.ServiceCenter, error) {
	var center domain.ServiceCenter
	var services []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&center.ID,
		&center.Name,
		&center.Address,
		&center.City,
		&center.State,
		&center.ZipCode,
		&center.Phone,
		&center.Email,
		pq.Array(&services),
		&center.WorkingHours,
		&center.Rating,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	center.ServicesOffered = servicesFromStrings(services)
	center.CreatedAt = createdAt.Time
	center.UpdatedAt = updatedAt.Time

	return &center, nil
}

func servicesToStrings(services []domain.ServiceType) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = string(s)
	}
	return out
}

func servicesFromStrings(services []string) []domain.ServiceType {
	out := make([]domain.ServiceType, len(services))
	for i, s := range services {
		out[i] = domain.ServiceType(s)
	}
	return out
}
