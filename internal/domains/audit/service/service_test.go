package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/domains/audit/service"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bucket    = "hotel-audit"
	objectURL = "https://cdn.example.com/audit/bookings/export.json"
)

func history(t *testing.T) []model.Booking {
	t.Helper()

	checkIn, err := timezone.ParseDay("2024-03-01")
	require.NoError(t, err)

	return []model.Booking{
		{ID: 1, RoomID: "101", GuestID: "guest-x", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2), Status: model.StatusActive},
		{ID: 2, RoomID: "101", GuestID: "guest-y", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1), Status: model.StatusCancelled},
		{ID: 3, RoomID: "102", GuestID: "guest-z", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3), Status: model.StatusActive},
	}
}

func TestAudit_Export(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = bucket

	errStorage := errors.New("storage down")
	errUpload := errors.New("upload refused")

	tests := []struct {
		name      string
		req       dto.ExportRequest
		setupMock func(t *testing.T, storage *bookingMocks.MockStorage, s3 *s3Mocks.MockS3)
		wantTotal int
		wantErr   error
	}{
		{
			name: "exports the full history including cancelled bookings",
			setupMock: func(t *testing.T, storage *bookingMocks.MockStorage, s3 *s3Mocks.MockS3) {
				storage.EXPECT().Load(gomock.Any()).Return(history(t), nil)
				s3.EXPECT().
					UploadFileBytes(gomock.Any(), bucket, "audit/bookings", gomock.Any(), constant.ContentTypeJSON, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, fileName, _ string, body []byte) (string, error) {
						assert.True(t, strings.HasSuffix(fileName, ".json"))

						var doc dto.Document
						require.NoError(t, json.Unmarshal(body, &doc))
						assert.Equal(t, 3, doc.Total)
						assert.Equal(t, "cancelled", doc.Bookings[1].Status)
						assert.Equal(t, constant.ActorSystem, doc.ExportedBy)

						return objectURL, nil
					})
				s3.EXPECT().GetObjectNameFromURL(bucket, objectURL).Return("audit/bookings/export.json")
			},
			wantTotal: 3,
		},
		{
			name: "filters by room and status",
			req:  dto.ExportRequest{RoomID: "101", Status: "active"},
			setupMock: func(t *testing.T, storage *bookingMocks.MockStorage, s3 *s3Mocks.MockS3) {
				storage.EXPECT().Load(gomock.Any()).Return(history(t), nil)
				s3.EXPECT().
					UploadFileBytes(gomock.Any(), bucket, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(objectURL, nil)
				s3.EXPECT().GetObjectNameFromURL(bucket, objectURL).Return("audit/bookings/export.json")
			},
			wantTotal: 1,
		},
		{
			name: "storage failure",
			setupMock: func(_ *testing.T, storage *bookingMocks.MockStorage, _ *s3Mocks.MockS3) {
				storage.EXPECT().Load(gomock.Any()).Return(nil, errStorage)
			},
			wantErr: errStorage,
		},
		{
			name: "upload failure",
			setupMock: func(t *testing.T, storage *bookingMocks.MockStorage, s3 *s3Mocks.MockS3) {
				storage.EXPECT().Load(gomock.Any()).Return(history(t), nil)
				s3.EXPECT().
					UploadFileBytes(gomock.Any(), bucket, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errUpload)
			},
			wantErr: errUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := bookingMocks.NewMockStorage(ctrl)
			s3 := s3Mocks.NewMockS3(ctrl)
			tt.setupMock(t, storage, s3)

			svc := service.New(storage, s3, cfg, otelMocks.NewOtel())

			res, err := svc.Export(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, objectURL, res.URL)
			assert.Equal(t, "audit/bookings/export.json", res.ObjectName)
			assert.Equal(t, tt.wantTotal, res.Total)
		})
	}
}

func TestExportRequest_Matches(t *testing.T) {
	booking := model.Booking{RoomID: "101", Status: model.StatusCancelled}

	assert.True(t, (&dto.ExportRequest{}).Matches(booking))
	assert.True(t, (&dto.ExportRequest{RoomID: "101", Status: "cancelled"}).Matches(booking))
	assert.False(t, (&dto.ExportRequest{RoomID: "102"}).Matches(booking))
	assert.False(t, (&dto.ExportRequest{Status: "active"}).Matches(booking))
}
