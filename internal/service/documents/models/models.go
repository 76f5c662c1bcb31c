package models

import (
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
)

// Request модели

// UploadDocumentRequest запрос на сохранение документа
// Категорию определяет маршрут, содержимое приходит из multipart формы
type UploadDocumentRequest struct {
	Category domain.DocumentCategory
	OwnerID  string
	Filename string
	Content  []byte
}

// Response модели

// DocumentResponse метаданные сохраненного документа
type DocumentResponse struct {
	Key         string    `json:"key"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"owner_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DocumentListResponse ответ со списком документов владельца
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// DocumentFileResponse документ вместе с содержимым для выдачи файла
type DocumentFileResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Методы конвертации

// FromDomainDocument конвертирует domain модель в DTO метаданных
func FromDomainDocument(d *domain.Document) *DocumentResponse {
	if d == nil {
		return nil
	}

	return &DocumentResponse{
		Key:         d.Key,
		Category:    string(d.Category),
		OwnerID:     d.OwnerID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		UploadedAt:  d.UploadedAt,
	}
}

// FromDomainDocumentList конвертирует список domain моделей в DTO
func FromDomainDocumentList(documents []*domain.Document) *DocumentListResponse {
	resp := &DocumentListResponse{
		Documents: make([]DocumentResponse, 0, len(documents)),
	}

	for _, doc := range documents {
		if docResp := FromDomainDocument(doc); docResp != nil {
			resp.Documents = append(resp.Documents, *docResp)
		}
	}

	return resp
}
