package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/query"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrBookingID = "booking.id"
	otelAttrRoomID    = "booking.room_id"
	otelAttrGuestID   = "booking.guest_id"
)

// Engine is the sole authority over bookings. Every value it returns is a copy.
type Engine interface {
	CreateBooking(ctx context.Context, roomID, guestID string, checkIn, checkOut time.Time) (model.Booking, error)
	// UpdateBooking moves an active booking to another room and/or other dates in one step.
	// An empty roomID or a zero date keeps the current value.
	UpdateBooking(ctx context.Context, bookingID int64, roomID string, checkIn, checkOut time.Time) (model.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64, opts ...CancelOption) error
	// GetAvailableRooms lists rooms free for the whole range. A nil range lists every room.
	GetAvailableRooms(ctx context.Context, rng *model.DateRange) ([]roomModel.Room, error)
	FilterBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (model.Booking, error)
	Subscribe(observer Observer) (unsubscribe func())
}

// Observer receives committed booking changes. It is called after every engine lock is released.
type Observer interface {
	OnBookingEvent(ctx context.Context, event model.Event)
}

type engineImpl struct {
	storage repository.Storage
	otel    otel.Otel
	now     func() time.Time

	mu       sync.RWMutex
	bookings map[int64]model.Booking
	byRoom   map[string]map[int64]struct{}
	sequence atomic.Int64
	locks    *roomLocks

	observersMu  sync.RWMutex
	observers    map[uint64]Observer
	nextObserver uint64
}

// New hydrates the engine from storage. IDs continue after the highest stored ID.
func New(ctx context.Context, storage repository.Storage, otel otel.Otel) (Engine, error) {
	ctx, scope := otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".New")
	defer scope.End()

	bookings, err := storage.Load(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load bookings")

		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	engine := &engineImpl{
		storage:   storage,
		otel:      otel,
		now:       timezone.Now,
		bookings:  make(map[int64]model.Booking, len(bookings)),
		byRoom:    map[string]map[int64]struct{}{},
		locks:     newRoomLocks(),
		observers: map[uint64]Observer{},
	}

	var lastID int64

	for _, booking := range bookings {
		engine.publish(booking.Normalize(), "")

		lastID = max(lastID, booking.ID)
	}

	engine.sequence.Store(lastID)

	log.Info().Int("bookings", len(bookings)).Int64("last_id", lastID).Msg("reservation engine hydrated")

	return engine, nil
}

func (s *engineImpl) CreateBooking(ctx context.Context, roomID, guestID string, checkIn, checkOut time.Time) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrRoomID:  roomID,
		otelAttrGuestID: guestID,
	})

	stay := model.NewDateRange(checkIn, checkOut)
	if err = stay.Validate(); err != nil {
		return res, fail(err)
	}

	if err = s.ensureRoom(ctx, roomID); err != nil {
		return res, err
	}

	if err = s.ensureGuest(ctx, guestID); err != nil {
		return res, err
	}

	res, err = s.create(ctx, roomID, guestID, stay)
	if err != nil {
		return res, err
	}

	log.Info().Int64("booking", res.ID).Str("room", res.RoomID).Msg("booking created")

	s.notify(ctx, model.Event{
		Type:       model.EventCreated,
		Booking:    res,
		Actor:      res.CreatedBy,
		OccurredAt: res.CreatedAt,
	})

	return res, nil
}

func (s *engineImpl) create(ctx context.Context, roomID, guestID string, stay model.DateRange) (model.Booking, error) {
	unlock := s.locks.lock(roomID)
	defer unlock()

	candidate := model.Booking{
		RoomID:   roomID,
		GuestID:  guestID,
		CheckIn:  stay.From,
		CheckOut: stay.To,
		Status:   model.StatusActive,
		Metadata: gModel.NewMetadata(s.now(), shared.ActorFromContext(ctx)),
	}

	if existing, found := query.Conflict(s.roomBookings(roomID), candidate, 0); found {
		return model.Booking{}, fail(&model.ConflictError{RoomID: roomID, BookingID: existing.ID})
	}

	candidate.ID = s.sequence.Add(1)

	if err := s.storage.Append(ctx, candidate); err != nil {
		log.Error().Err(err).Int64("booking", candidate.ID).Msg("failed to append booking")

		return model.Booking{}, fail(fmt.Errorf("failed to store booking: %w", err))
	}

	s.publish(candidate, "")

	return candidate, nil
}

// change carries the requested new values of a booking. Zero fields keep the current value.
type change struct {
	roomID   string
	checkIn  time.Time
	checkOut time.Time
}

func (c change) apply(booking model.Booking) model.Booking {
	if c.roomID != "" {
		booking.RoomID = c.roomID
	}

	if !c.checkIn.IsZero() {
		booking.CheckIn = timezone.Day(c.checkIn)
	}

	if !c.checkOut.IsZero() {
		booking.CheckOut = timezone.Day(c.checkOut)
	}

	return booking
}

func (s *engineImpl) UpdateBooking(ctx context.Context, bookingID int64, roomID string, checkIn, checkOut time.Time) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrBookingID: bookingID,
		otelAttrRoomID:    roomID,
	})

	req := change{roomID: roomID, checkIn: checkIn, checkOut: checkOut}

	var previous model.Booking

	for {
		current, err := s.lookup(bookingID)
		if err != nil {
			return res, err
		}

		target, err := validateUpdate(current, req)
		if err != nil {
			return res, err
		}

		if target.RoomID != current.RoomID {
			if err = s.ensureRoom(ctx, target.RoomID); err != nil {
				return res, err
			}
		}

		unlock := s.locks.lock(current.RoomID, target.RoomID)

		latest, err := s.lookup(bookingID)
		if err != nil {
			unlock()

			return res, err
		}

		// Another update moved the booking before the locks were taken.
		if latest.RoomID != current.RoomID {
			unlock()

			continue
		}

		previous, res, err = s.applyUpdate(ctx, latest, req)

		unlock()

		if err != nil {
			return res, err
		}

		break
	}

	log.Info().Int64("booking", res.ID).Str("room", res.RoomID).Msg("booking updated")

	s.notify(ctx, model.Event{
		Type:       model.EventUpdated,
		Booking:    res,
		Previous:   &previous,
		Actor:      res.ModifiedBy,
		OccurredAt: res.ModifiedAt,
	})

	return res, nil
}

// validateUpdate checks the booking can take the requested change and returns the result.
func validateUpdate(current model.Booking, req change) (model.Booking, error) {
	if !current.IsActive() {
		return model.Booking{}, fail(model.ErrBookingNotActive)
	}

	updated := req.apply(current)

	stay := model.DateRange{From: updated.CheckIn, To: updated.CheckOut}
	if err := stay.Validate(); err != nil {
		return model.Booking{}, fail(err)
	}

	return updated, nil
}

// applyUpdate runs with the locks of both the current and the target room held.
func (s *engineImpl) applyUpdate(ctx context.Context, current model.Booking, req change) (previous, updated model.Booking, err error) {
	updated, err = validateUpdate(current, req)
	if err != nil {
		return current, model.Booking{}, err
	}

	if existing, found := query.Conflict(s.roomBookings(updated.RoomID), updated, current.ID); found {
		return current, model.Booking{}, fail(&model.ConflictError{RoomID: updated.RoomID, BookingID: existing.ID})
	}

	updated.Touch(s.now(), shared.ActorFromContext(ctx))

	if err = s.storage.Replace(ctx, updated); err != nil {
		log.Error().Err(err).Int64("booking", updated.ID).Msg("failed to replace booking")

		return current, model.Booking{}, fail(fmt.Errorf("failed to store booking: %w", err))
	}

	s.publish(updated, current.RoomID)

	return current, updated, nil
}

func (s *engineImpl) CancelBooking(ctx context.Context, bookingID int64, opts ...CancelOption) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrBookingID, bookingID)

	options := newCancelOptions(opts)

	var previous, cancelled model.Booking

	for {
		current, err := s.lookup(bookingID)
		if err != nil {
			return err
		}

		unlock := s.locks.lock(current.RoomID)

		latest, err := s.lookup(bookingID)
		if err != nil {
			unlock()

			return err
		}

		if latest.RoomID != current.RoomID {
			unlock()

			continue
		}

		if !latest.IsActive() {
			unlock()

			if options.tolerateCancelled {
				return nil
			}

			return fail(model.ErrBookingAlreadyCancelled)
		}

		previous = latest
		cancelled = latest
		cancelled.Status = model.StatusCancelled
		cancelled.Touch(s.now(), shared.ActorFromContext(ctx))

		err = s.storage.Replace(ctx, cancelled)
		if err == nil {
			s.publish(cancelled, latest.RoomID)
		}

		unlock()

		if err != nil {
			log.Error().Err(err).Int64("booking", bookingID).Msg("failed to cancel booking")

			return fail(fmt.Errorf("failed to store booking: %w", err))
		}

		break
	}

	log.Info().Int64("booking", bookingID).Msg("booking cancelled")

	s.notify(ctx, model.Event{
		Type:       model.EventCancelled,
		Booking:    cancelled,
		Previous:   &previous,
		Actor:      cancelled.ModifiedBy,
		OccurredAt: cancelled.ModifiedAt,
	})

	return nil
}

func (s *engineImpl) GetAvailableRooms(ctx context.Context, rng *model.DateRange) (res []roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var window *model.DateRange

	if rng != nil {
		normalized := model.NewDateRange(rng.From, rng.To)
		if err = normalized.Validate(); err != nil {
			return nil, fail(err)
		}

		window = &normalized
	}

	rooms, err := s.storage.Rooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return query.AvailableRooms(rooms, s.snapshot(""), window), nil
}

func (s *engineImpl) FilterBookings(ctx context.Context, filter model.BookingFilter) (res []model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FilterBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = filter.Validate(); err != nil {
		return nil, fail(err)
	}

	return query.FilterBookings(s.snapshot(filter.RoomID), filter), nil
}

func (s *engineImpl) GetBooking(ctx context.Context, bookingID int64) (res model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.lookup(bookingID)
}

func (s *engineImpl) Subscribe(observer Observer) (unsubscribe func()) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = observer

	return sync.OnceFunc(func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()

		delete(s.observers, id)
	})
}

// notify runs every observer in subscription order. A panicking observer is logged and skipped.
func (s *engineImpl) notify(ctx context.Context, event model.Event) {
	s.observersMu.RLock()
	ids := slices.Sorted(maps.Keys(s.observers))
	observers := make([]Observer, 0, len(ids))

	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}
	s.observersMu.RUnlock()

	ctx = context.WithoutCancel(ctx)

	for _, observer := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Str("event", string(event.Type)).Msg("booking observer panicked")
				}
			}()

			observer.OnBookingEvent(ctx, event)
		}()
	}
}

func (s *engineImpl) ensureRoom(ctx context.Context, roomID string) error {
	exists, err := s.storage.RoomExists(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to check room")

		return fmt.Errorf("failed to check room: %w", err)
	}

	if !exists {
		return fail(fmt.Errorf("%w: %s", model.ErrRoomNotFound, roomID))
	}

	return nil
}

func (s *engineImpl) ensureGuest(ctx context.Context, guestID string) error {
	exists, err := s.storage.GuestExists(ctx, guestID)
	if err != nil {
		log.Error().Err(err).Str("guest", guestID).Msg("failed to check guest")

		return fmt.Errorf("failed to check guest: %w", err)
	}

	if !exists {
		return fail(fmt.Errorf("%w: %s", model.ErrGuestNotFound, guestID))
	}

	return nil
}

func (s *engineImpl) lookup(bookingID int64) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return model.Booking{}, fail(fmt.Errorf("%w: %d", model.ErrBookingNotFound, bookingID))
	}

	return booking, nil
}

// roomBookings returns copies of every booking held by the room, cancelled included.
func (s *engineImpl) roomBookings(roomID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byRoom[roomID]
	bookings := make([]model.Booking, 0, len(ids))

	for id := range ids {
		bookings = append(bookings, s.bookings[id])
	}

	return bookings
}

// snapshot copies the bookings of one room, or of every room when roomID is empty.
func (s *engineImpl) snapshot(roomID string) []model.Booking {
	if roomID != "" {
		return s.roomBookings(roomID)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := slices.Collect(maps.Values(s.bookings))
	slices.SortFunc(bookings, func(a, b model.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return bookings
}

// publish makes an already persisted booking visible to readers.
func (s *engineImpl) publish(booking model.Booking, previousRoomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if previousRoomID != "" && previousRoomID != booking.RoomID {
		delete(s.byRoom[previousRoomID], booking.ID)
	}

	if s.byRoom[booking.RoomID] == nil {
		s.byRoom[booking.RoomID] = map[int64]struct{}{}
	}

	s.byRoom[booking.RoomID][booking.ID] = struct{}{}
	s.bookings[booking.ID] = booking
}

// fail attaches the response code that matches the domain error carried by err.
func fail(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidDateRange):
		return failure.BadRequest(err) // nolint:wrapcheck
	case errors.Is(err, model.ErrRoomNotFound),
		errors.Is(err, model.ErrGuestNotFound),
		errors.Is(err, model.ErrBookingNotFound):
		return failure.NotFound(err) // nolint:wrapcheck
	case errors.Is(err, model.ErrRoomUnavailable),
		errors.Is(err, model.ErrBookingNotActive),
		errors.Is(err, model.ErrBookingAlreadyCancelled):
		return failure.Conflict(err) // nolint:wrapcheck
	default:
		return err
	}
}
