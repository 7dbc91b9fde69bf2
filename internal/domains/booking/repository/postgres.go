package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/lib/pq"
)

const (
	cacheRoomExists = "room:exists"
	cacheRooms      = "room:all"
)

var _ Storage = (*Postgres)(nil)

// bookingChange holds the columns a booking may change after it is created.
type bookingChange struct {
	RoomID   string       `db:"room_id"`
	CheckIn  time.Time    `db:"check_in"`
	CheckOut time.Time    `db:"check_out"`
	Status   model.Status `db:"status"`
}

// Postgres stores bookings in the bookings table. Rooms are immutable, so room lookups go through Redis.
type Postgres struct {
	bookings gRepo.Repository[model.Booking]
	rooms    gRepo.Repository[roomModel.Room]
	guests   gRepo.Repository[guestModel.Guest]
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func NewPostgres(db *postgres.Connection, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) *Postgres {
	return &Postgres{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		rooms:    gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, db, otel),
		guests:   gRepo.NewRepository[guestModel.Guest](guestModel.EntityName, guestModel.TableName, db, otel),
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
	}
}

func (p *Postgres) Load(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Load")
	defer scope.End()

	bookings, err := p.bookings.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	for i := range bookings {
		bookings[i] = bookings[i].Normalize()
	}

	return bookings, nil
}

func (p *Postgres) Append(ctx context.Context, booking model.Booking) error {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Append")
	defer scope.End()

	scope.SetAttribute("booking.id", booking.ID)

	if err := p.bookings.Insert(ctx, booking); err != nil {
		return translatePqError(err)
	}

	return nil
}

func (p *Postgres) Replace(ctx context.Context, booking model.Booking) error {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Replace")
	defer scope.End()

	scope.SetAttribute("booking.id", booking.ID)

	fields := shared.TransformFields(bookingChange{
		RoomID:   booking.RoomID,
		CheckIn:  booking.CheckIn,
		CheckOut: booking.CheckOut,
		Status:   booking.Status,
	}, booking.ModifiedBy)
	fields[constant.FieldModifiedAt] = booking.ModifiedAt

	affected, err := p.bookings.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		return translatePqError(err)
	}

	if affected == 0 {
		return ErrBookingMissing
	}

	return nil
}

func (p *Postgres) RoomExists(ctx context.Context, roomID string) (bool, error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.RoomExists")
	defer scope.End()

	// Only positive answers are cached so a newly registered room is seen at once.
	exists, err := cache.Remember(ctx, p.cache, shared.BuildCacheKey(cacheRoomExists, roomID), p.cfg.Cache.TTL,
		func(ctx context.Context) (bool, error) {
			return p.rooms.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		},
		func(exists bool) bool { return exists },
	)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room: %w", err)
	}

	return exists, nil
}

func (p *Postgres) GuestExists(ctx context.Context, guestID string) (bool, error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.GuestExists")
	defer scope.End()

	exists, err := p.guests.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check guest: %w", err)
	}

	return exists, nil
}

func (p *Postgres) Rooms(ctx context.Context) ([]roomModel.Room, error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Rooms")
	defer scope.End()

	rooms, err := cache.Remember(ctx, p.cache, cacheRooms, p.cfg.Cache.TTL,
		func(ctx context.Context) ([]roomModel.Room, error) {
			return p.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
		},
		nil,
	)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

// translatePqError maps constraint violations onto storage and domain errors.
func translatePqError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicateBooking, pqErr.Message)
	case constant.PqErrorCodeExclusionViolation:
		return fmt.Errorf("%w: %s", model.ErrRoomUnavailable, pqErr.Message)
	default:
		return err
	}
}
