package repository

import (
	"reflect"
	"testing"
	"time"

	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
)

type stay struct {
	ID      int64     `db:"id"`
	RoomID  string    `db:"room_id"`
	CheckIn time.Time `db:"check_in"`
	Note    string    `db:"-"`
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("bookings", reflectTypeOf[stay]())

	assert.Equal(t, []string{"id", "room_id", "check_in", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Len(t, columns, len(insertColumns))
	assert.Equal(t, column{name: "room_id", table: "bookings"}, columns[1])
}

func TestRepository_SelectAndWhere(t *testing.T) {
	repo := NewRepository[stay]("booking", "bookings", nil, nil)

	assert.Equal(t, "bookings.id, bookings.room_id", repo.getSelectQuery("id", "room_id"))

	where, args := repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: int64(3), Operator: dto.FilterOperatorEq, Table: "bookings"}},
	})

	assert.Equal(t, " WHERE (bookings.id = :id) ", where)
	assert.Equal(t, map[string]any{"id": int64(3)}, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)
}

func reflectTypeOf[T any]() reflect.Type {
	var zero T

	return reflect.TypeOf(zero)
}
