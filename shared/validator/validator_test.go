package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomID   string `json:"room_id"   validate:"required,max=64"`
	GuestID  string `json:"guest_id"  validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,day"`
	CheckOut string `json:"check_out" validate:"required,day"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    stayRequest
		wantErr string
	}{
		{
			name: "valid request",
			data: stayRequest{RoomID: "101", GuestID: "g-1", CheckIn: "2024-03-01", CheckOut: "2024-03-05"},
		},
		{
			name:    "missing room",
			data:    stayRequest{GuestID: "g-1", CheckIn: "2024-03-01", CheckOut: "2024-03-05"},
			wantErr: "room_id is required",
		},
		{
			name:    "malformed day",
			data:    stayRequest{RoomID: "101", GuestID: "g-1", CheckIn: "03/01/2024", CheckOut: "2024-03-05"},
			wantErr: "check_in must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "room id too long",
			data:    stayRequest{RoomID: strings.Repeat("9", 65), GuestID: "g-1", CheckIn: "2024-03-01", CheckOut: "2024-03-05"},
			wantErr: "room_id must be less than or equal to 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"room_id":"101","guest_id":"g-1","check_in":"2024-03-01","check_out":"2024-03-02"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "101", req.RoomID)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"room_id":`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var req stayRequest

		err := validator.Validate(strings.NewReader(`{"room_id":"101","price":10}`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2024-02-29", "day"))
	assert.Error(t, validator.ValidateVar("2023-02-29", "day"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
}

func TestValidateStruct_JoinsFieldErrors(t *testing.T) {
	err := validator.ValidateStruct(&stayRequest{CheckIn: "2024-03-01", CheckOut: "tomorrow"})

	require.Error(t, err)
	assert.Equal(t, "room_id is required; guest_id is required; check_out must be a date formatted as YYYY-MM-DD", err.Error())
}

func TestValidateVar_Boolean(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("", "omitempty,boolean"))
	assert.NoError(t, validator.ValidateVar("true", "omitempty,boolean"))

	err := validator.ValidateVar("maybe", "omitempty,boolean")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
