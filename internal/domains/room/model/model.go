package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldType     = "type"
	FieldCapacity = "capacity"
)

// Room is immutable once registered. The reservation engine only ever reads it.
type Room struct {
	ID       string `bson:"_id"      db:"id"`
	Number   string `bson:"number"   db:"number"`
	Type     string `bson:"type"     db:"type"`
	Capacity int    `bson:"capacity" db:"capacity"`
}
