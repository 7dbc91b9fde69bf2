package model

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// Guest identity is owned by an external collaborator; bookings only reference the ID.
type Guest struct {
	ID    string `bson:"_id"   db:"id"`
	Name  string `bson:"name"  db:"name"`
	Email string `bson:"email" db:"email"`
}
