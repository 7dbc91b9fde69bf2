package model_test

import (
	"testing"

	"hotel/internal/domains/guest/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	guest, err := model.Parse("guest-1: Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, model.Guest{ID: "guest-1", Name: "Ada Lovelace"}, guest)

	guest, err = model.Parse("guest-2")
	require.NoError(t, err)
	assert.Equal(t, model.Guest{ID: "guest-2"}, guest)

	_, err = model.Parse(" :nobody")
	assert.Error(t, err)
}

func TestParseAll(t *testing.T) {
	guests, err := model.ParseAll([]string{"a", "b:Bea"})
	require.NoError(t, err)
	assert.Len(t, guests, 2)

	_, err = model.ParseAll([]string{""})
	assert.Error(t, err)
}
