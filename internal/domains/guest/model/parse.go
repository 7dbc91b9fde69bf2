package model

import (
	"fmt"
	"strings"
)

// Parse reads a guest from "id[:name]".
func Parse(value string) (Guest, error) {
	id, name, _ := strings.Cut(strings.TrimSpace(value), ":")

	id = strings.TrimSpace(id)
	if id == "" {
		return Guest{}, fmt.Errorf("invalid guest %q", value)
	}

	return Guest{ID: id, Name: strings.TrimSpace(name)}, nil
}

func ParseAll(values []string) ([]Guest, error) {
	guests := make([]Guest, 0, len(values))

	for _, value := range values {
		guest, err := Parse(value)
		if err != nil {
			return nil, err
		}

		guests = append(guests, guest)
	}

	return guests, nil
}
