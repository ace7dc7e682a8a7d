package models

// Category groups credentials. Name is unique across the whole store.
type Category struct {
	ID     string
	Name   string
	UserID string
}
