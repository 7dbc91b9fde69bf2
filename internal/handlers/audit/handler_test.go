package audit_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	auditMocks "hotel/internal/domains/audit/mocks"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/handlers/audit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Export(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *auditMocks.MockAudit)
		wantCode  int
	}{
		{
			name: "exports everything without a body",
			setupMock: func(svc *auditMocks.MockAudit) {
				svc.EXPECT().Export(gomock.Any(), dto.ExportRequest{}).Return(dto.ExportResponse{URL: "https://cdn/x.json", Total: 2}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "exports with a filter",
			body: `{"room_id":"101","status":"cancelled"}`,
			setupMock: func(svc *auditMocks.MockAudit) {
				svc.EXPECT().Export(gomock.Any(), dto.ExportRequest{RoomID: "101", Status: "cancelled"}).Return(dto.ExportResponse{}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "unknown status",
			body:      `{"status":"pending"}`,
			setupMock: func(_ *auditMocks.MockAudit) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "upload failure",
			setupMock: func(svc *auditMocks.MockAudit) {
				svc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(dto.ExportResponse{}, errors.New("bucket missing"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := auditMocks.NewMockAudit(ctrl)
			tt.setupMock(svc)

			handler := audit.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/audit/exports", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
