package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentCategory partitions stored files by what they describe
type DocumentCategory string

const (
	CategoryServiceReport DocumentCategory = "service-reports"
	CategoryInvoice       DocumentCategory = "invoices"
	CategoryVehicleImage  DocumentCategory = "vehicle-images"
)

// ParseDocumentCategory converts a raw string into a DocumentCategory
func ParseDocumentCategory(s string) (DocumentCategory, error) {
	c := DocumentCategory(strings.TrimSpace(s))
	switch c {
	case CategoryServiceReport, CategoryInvoice, CategoryVehicleImage:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentCategory, s)
	}
}

// DocumentKey builds the storage key "<category>/<ownerID>/<filename>".
// Every stored file must be addressed by a key of this exact shape.
func DocumentKey(category DocumentCategory, ownerID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", category, ownerID, filename)
}

// Document represents a stored file attached to a booking or vehicle
type Document struct {
	Key         string
	Category    DocumentCategory
	OwnerID     string
	Filename    string
	ContentType string
	SizeBytes   int64
	Content     []byte // empty in listings
	UploadedAt  time.Time
}

// ContentTypeFor determines a MIME type from the file extension
func ContentTypeFor(filename string) string {
	parts := strings.Split(filename, ".")
	ext := strings.ToLower(parts[len(parts)-1])
	switch ext {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "txt":
		return "text/plain"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
