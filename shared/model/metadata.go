package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `bson:"created_at"  db:"created_at"`
	ModifiedAt time.Time `bson:"modified_at" db:"modified_at"`
	CreatedBy  string    `bson:"created_by"  db:"created_by"`
	ModifiedBy string    `bson:"modified_by" db:"modified_by"`
}

// Touch stamps the modification fields.
func (m *Metadata) Touch(at time.Time, by string) {
	m.ModifiedAt = at
	m.ModifiedBy = by
}

// NewMetadata returns metadata for an entity created now by actor.
func NewMetadata(at time.Time, by string) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  by,
		ModifiedBy: by,
	}
}
