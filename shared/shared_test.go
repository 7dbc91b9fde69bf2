package shared_test

import (
	"context"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true string", input: "true", expected: boolPtr(true)},
		{name: "false string", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "upper case", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "yes please", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder rounds up", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected []int
	}{
		{name: "no limit returns everything", params: dto.QueryParams{}, expected: items},
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 2}, expected: []int{1, 2}},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 2}, expected: []int{5}},
		{name: "page past the end", params: dto.QueryParams{Page: 4, Limit: 2}, expected: []int{}},
		{name: "missing page means first", params: dto.QueryParams{Limit: 3}, expected: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.params))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type change struct {
		RoomID   string    `db:"room_id"`
		CheckIn  time.Time `db:"check_in"`
		Status   string    `db:"status"`
		Untagged string
	}

	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	result := shared.TransformFields(change{RoomID: "102", CheckIn: checkIn, Untagged: "x"}, constant.ActorSystem)

	assert.Equal(t, "102", result["room_id"])
	assert.Equal(t, checkIn, result["check_in"])
	assert.NotContains(t, result, "status")
	assert.NotContains(t, result, "Untagged")
	assert.Equal(t, constant.ActorSystem, result[constant.FieldModifiedBy])

	_, ok := result[constant.FieldModifiedAt].(time.Time)
	assert.True(t, ok)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "bookings")

	require.Len(t, filter.Filters, 1)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:exists:101", shared.BuildCacheKey("room:exists", "101"))
	assert.Equal(t, "rooms", shared.BuildCacheKey("rooms"))
	assert.Equal(t, "booking:7:active", shared.BuildCacheKey("booking", 7, "active"))
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, constant.ActorSystem, shared.ActorFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")
	assert.Equal(t, "front-desk", shared.ActorFromContext(ctx))

	ctx = context.WithValue(context.Background(), constant.ContextKeyActor, "")
	assert.Equal(t, constant.ActorSystem, shared.ActorFromContext(ctx))
}

func boolPtr(b bool) *bool {
	return &b
}
