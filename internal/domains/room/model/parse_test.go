package model_test

import (
	"testing"

	"hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    model.Room
		wantErr bool
	}{
		{
			name:  "number only",
			value: "101",
			want:  model.Room{ID: "101", Number: "101", Type: model.DefaultType, Capacity: model.DefaultCapacity},
		},
		{
			name:  "with type",
			value: " 102:suite ",
			want:  model.Room{ID: "102", Number: "102", Type: "suite", Capacity: model.DefaultCapacity},
		},
		{
			name:  "with type and capacity",
			value: "103:family:4",
			want:  model.Room{ID: "103", Number: "103", Type: "family", Capacity: 4},
		},
		{
			name:  "empty type keeps default",
			value: "104::1",
			want:  model.Room{ID: "104", Number: "104", Type: model.DefaultType, Capacity: 1},
		},
		{name: "empty", value: "", wantErr: true},
		{name: "bad capacity", value: "105:single:x", wantErr: true},
		{name: "zero capacity", value: "105:single:0", wantErr: true},
		{name: "too many parts", value: "105:single:1:extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Parse(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAll(t *testing.T) {
	rooms, err := model.ParseAll([]string{"101", "102:suite"})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = model.ParseAll([]string{"101", ""})
	assert.Error(t, err)
}
