package documents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	documentRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/document"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/service/documents/models"
)

type fakeDocumentRepo struct {
	documents []*domain.Document
	err       error
}

func (f *fakeDocumentRepo) Upsert(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *doc
	stored.UploadedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, existing := range f.documents {
		if existing.Key == stored.Key {
			f.documents[i] = &stored
			result := stored
			return &result, nil
		}
	}
	f.documents = append(f.documents, &stored)
	result := stored
	return &result, nil
}

func (f *fakeDocumentRepo) GetByKey(_ context.Context, key string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, doc := range f.documents {
		if doc.Key == key {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, documentRepo.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) ListByOwner(_ context.Context, category domain.DocumentCategory, ownerID string) ([]*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Document
	for _, doc := range f.documents {
		if doc.Category != category || doc.OwnerID != ownerID {
			continue
		}
		copied := *doc
		copied.Content = nil
		out = append(out, &copied)
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type fakeVehicleRepo struct {
	vehicles []*domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(docs *fakeDocumentRepo, bookings *fakeBookingRepo, vehicles *fakeVehicleRepo) *Service {
	return NewService(docs, bookings, vehicles, nopLogger{})
}

func knownBooking() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: []*domain.Booking{{ID: "b-1", CustomerID: "c-1"}}}
}

func knownVehicle() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: []*domain.Vehicle{{ID: "v-1", CustomerID: "c-1"}}}
}

func TestService_Upload_ServiceReport(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc := newTestService(docs, knownBooking(), &fakeVehicleRepo{})

	resp, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "inspection.pdf",
		Content:  []byte("report body"),
	})

	require.NoError(t, err)
	assert.Equal(t, "service-reports/b-1/inspection.pdf", resp.Key)
	assert.Equal(t, "service-reports", resp.Category)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, int64(len("report body")), resp.SizeBytes)
	require.Len(t, docs.documents, 1)
}

func TestService_Upload_VehicleImage(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc := newTestService(docs, &fakeBookingRepo{}, knownVehicle())

	resp, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryVehicleImage,
		OwnerID:  "v-1",
		Filename: "front.jpg",
		Content:  []byte{0xff, 0xd8, 0xff},
	})

	require.NoError(t, err)
	assert.Equal(t, "vehicle-images/v-1/front.jpg", resp.Key)
	assert.Equal(t, "image/jpeg", resp.ContentType)
}

func TestService_Upload_Overwrite(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc := newTestService(docs, knownBooking(), &fakeVehicleRepo{})

	req := &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "report.txt",
		Content:  []byte("first"),
	}
	_, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)

	req.Content = []byte("second version")
	resp, err := svc.Upload(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(len("second version")), resp.SizeBytes)
	require.Len(t, docs.documents, 1)
}

func TestService_Upload_OwnerNotFound(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, &fakeBookingRepo{}, &fakeVehicleRepo{})

	_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "missing",
		Filename: "report.pdf",
		Content:  []byte("x"),
	})

	require.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestService_Upload_MissingFilename(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, knownBooking(), &fakeVehicleRepo{})

	_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "   ",
		Content:  []byte("x"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Upload_FilenameWithPath(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, knownBooking(), &fakeVehicleRepo{})

	_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "../escape.pdf",
		Content:  []byte("x"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Upload_EmptyContent(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, knownBooking(), &fakeVehicleRepo{})

	_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "report.pdf",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc := newTestService(docs, knownBooking(), &fakeVehicleRepo{})

	for _, name := range []string{"report.pdf", "invoice-photo.png"} {
		_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
			Category: domain.CategoryServiceReport,
			OwnerID:  "b-1",
			Filename: name,
			Content:  []byte("data"),
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), domain.CategoryServiceReport, "b-1")

	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, "report.pdf", resp.Documents[0].Filename)
	assert.Equal(t, "invoice-photo.png", resp.Documents[1].Filename)
}

func TestService_List_OwnerNotFound(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, &fakeBookingRepo{}, &fakeVehicleRepo{})

	_, err := svc.List(context.Background(), domain.CategoryServiceReport, "missing")

	require.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestService_List_Empty(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, knownBooking(), &fakeVehicleRepo{})

	resp, err := svc.List(context.Background(), domain.CategoryServiceReport, "b-1")

	require.NoError(t, err)
	assert.Empty(t, resp.Documents)
}

func TestService_Fetch(t *testing.T) {
	docs := &fakeDocumentRepo{}
	svc := newTestService(docs, knownBooking(), &fakeVehicleRepo{})

	_, err := svc.Upload(context.Background(), &models.UploadDocumentRequest{
		Category: domain.CategoryServiceReport,
		OwnerID:  "b-1",
		Filename: "report.pdf",
		Content:  []byte("full report body"),
	})
	require.NoError(t, err)

	file, err := svc.Fetch(context.Background(), domain.CategoryServiceReport, "b-1", "report.pdf")

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("full report body"), file.Content)
}

func TestService_Fetch_NotFound(t *testing.T) {
	svc := newTestService(&fakeDocumentRepo{}, knownBooking(), &fakeVehicleRepo{})

	_, err := svc.Fetch(context.Background(), domain.CategoryServiceReport, "b-1", "missing.pdf")

	require.ErrorIs(t, err, ErrDocumentNotFound)
}
