package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	exportDirectory = "audit/bookings"
	exportLayout    = "20060102T150405"
)

type Audit interface {
	// Export writes the stored booking history, cancelled bookings included, to object storage.
	Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResponse, error)
}

type serviceImpl struct {
	storage repository.Storage
	s3      s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(storage repository.Storage, s3 s3.S3, cfg *config.Config, otel otel.Otel) Audit {
	return &serviceImpl{
		storage: storage,
		s3:      s3,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ExportRequest) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.storage.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking history")

		return res, fmt.Errorf("failed to load booking history: %w", err)
	}

	matched := make([]model.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking = booking.Normalize(); req.Matches(booking) {
			matched = append(matched, booking)
		}
	}

	now := timezone.Now()

	doc := dto.Document{
		ExportedAt: now.Format(constant.DateFormat),
		ExportedBy: shared.ActorFromContext(ctx),
	}
	doc.FromModels(matched)

	body, err := json.Marshal(doc)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode booking history")

		return res, fmt.Errorf("failed to encode booking history: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.json", now.Format(exportLayout), uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, exportDirectory, fileName, constant.ContentTypeJSON, body)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload booking history")

		return res, failure.InternalError(fmt.Errorf("failed to upload booking history: %w", err))
	}

	res.URL = url
	res.ObjectName = s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, url)
	res.Total = doc.Total

	log.Info().Str("object", res.ObjectName).Int("bookings", res.Total).Msg("booking history exported")

	return res, nil
}
