package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultType     = "standard"
	DefaultCapacity = 2
)

// Parse reads a room from "number[:type[:capacity]]". The number doubles as the room ID.
func Parse(value string) (Room, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")

	room := Room{
		ID:       strings.TrimSpace(parts[0]),
		Type:     DefaultType,
		Capacity: DefaultCapacity,
	}

	if room.ID == "" || len(parts) > 3 {
		return Room{}, fmt.Errorf("invalid room %q", value)
	}

	room.Number = room.ID

	if len(parts) > 1 && parts[1] != "" {
		room.Type = parts[1]
	}

	if len(parts) > 2 {
		capacity, err := strconv.Atoi(parts[2])
		if err != nil || capacity < 1 {
			return Room{}, fmt.Errorf("invalid capacity for room %q", value)
		}

		room.Capacity = capacity
	}

	return room, nil
}

func ParseAll(values []string) ([]Room, error) {
	rooms := make([]Room, 0, len(values))

	for _, value := range values {
		room, err := Parse(value)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}
