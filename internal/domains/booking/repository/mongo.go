package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/mongo"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"

	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ Storage = (*Mongo)(nil)

// Mongo keeps rooms, guests and bookings in collections named after their tables.
type Mongo struct {
	bookings *mongoDriver.Collection
	rooms    *mongoDriver.Collection
	guests   *mongoDriver.Collection
	otel     otel.Otel
}

func NewMongo(conn *mongo.Connection, otel otel.Otel) *Mongo {
	return &Mongo{
		bookings: conn.Database.Collection(model.TableName),
		rooms:    conn.Database.Collection(roomModel.TableName),
		guests:   conn.Database.Collection(guestModel.TableName),
		otel:     otel,
	}
}

func (m *Mongo) Load(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.Load")
	defer scope.End()

	cursor, err := m.bookings.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []model.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	for i := range bookings {
		bookings[i] = bookings[i].Normalize()
	}

	return bookings, nil
}

func (m *Mongo) Append(ctx context.Context, booking model.Booking) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.Append")
	defer scope.End()

	scope.SetAttribute("booking.id", booking.ID)

	if _, err := m.bookings.InsertOne(ctx, booking); err != nil {
		scope.TraceError(err)

		if mongoDriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %d", ErrDuplicateBooking, booking.ID)
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (m *Mongo) Replace(ctx context.Context, booking model.Booking) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.Replace")
	defer scope.End()

	scope.SetAttribute("booking.id", booking.ID)

	result, err := m.bookings.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to replace booking: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrBookingMissing
	}

	return nil
}

func (m *Mongo) RoomExists(ctx context.Context, roomID string) (bool, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.RoomExists")
	defer scope.End()

	return exists(ctx, m.rooms, roomID)
}

func (m *Mongo) GuestExists(ctx context.Context, guestID string) (bool, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.GuestExists")
	defer scope.End()

	return exists(ctx, m.guests, guestID)
}

func (m *Mongo) Rooms(ctx context.Context) ([]roomModel.Room, error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".mongo.Rooms")
	defer scope.End()

	cursor, err := m.rooms.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []roomModel.Room{}
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func exists(ctx context.Context, collection *mongoDriver.Collection, id string) (bool, error) {
	err := collection.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", collection.Name(), err)
	}

	return true, nil
}
