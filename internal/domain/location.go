package domain

import "strings"

type Location struct {
	ID   int64
	Name string
}

type LocationIn struct {
	Name string
}

func NewLocationIn(name string) (*LocationIn, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return &LocationIn{Name: name}, nil
}
