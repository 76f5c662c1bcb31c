package document

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-VehicleService/internal/domain"
	"github.com/m04kA/SMC-VehicleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с документами
// Содержимое файлов хранится в bytea; ключ хранилища уникален
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория документов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет документ, перезаписывая содержимое при совпадении ключа
func (r *Repository) Upsert(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("documents").
		Columns(
			"storage_key",
			"category",
			"owner_id",
			"filename",
			"content_type",
			"size_bytes",
			"content",
		).
		Values(
			doc.Key,
			doc.Category,
			doc.OwnerID,
			doc.Filename,
			doc.ContentType,
			doc.SizeBytes,
			doc.Content,
		).
		Suffix(`ON CONFLICT (storage_key) DO UPDATE SET
			content = EXCLUDED.content,
			content_type = EXCLUDED.content_type,
			size_bytes = EXCLUDED.size_bytes,
			uploaded_at = NOW()
			RETURNING uploaded_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var uploadedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&uploadedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	doc.UploadedAt = uploadedAt.Time

	return doc, nil
}

// GetByKey получает документ вместе с содержимым по ключу хранилища
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"storage_key",
		"category",
		"owner_id",
		"filename",
		"content_type",
		"size_bytes",
		"content",
		"uploaded_at",
	).
		From("documents").
		Where(squirrel.Eq{"storage_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var doc domain.Document
	var uploadedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&doc.Key,
		&doc.Category,
		&doc.OwnerID,
		&doc.Filename,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.Content,
		&uploadedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan document: %v", ErrScanRow, err)
	}

	doc.UploadedAt = uploadedAt.Time

	return &doc, nil
}

// ListByOwner получает метаданные документов владельца в категории
// Содержимое файлов не загружается
func (r *Repository) ListByOwner(ctx context.Context, category domain.DocumentCategory, ownerID string) ([]*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"storage_key",
		"category",
		"owner_id",
		"filename",
		"content_type",
		"size_bytes",
		"uploaded_at",
	).
		From("documents").
		Where(squirrel.Eq{"category": category, "owner_id": ownerID}).
		OrderBy("uploaded_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		var doc domain.Document
		var uploadedAt sql.NullTime

		err := rows.Scan(
			&doc.Key,
			&doc.Category,
			&doc.OwnerID,
			&doc.Filename,
			&doc.ContentType,
			&doc.SizeBytes,
			&uploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}

		doc.UploadedAt = uploadedAt.Time
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

// Delete удаляет документ по ключу хранилища
func (r *Repository) Delete(ctx context.Context, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("documents").
		Where(squirrel.Eq{"storage_key": key}).
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
		return ErrDocumentNotFound
	}

	return nil
}
