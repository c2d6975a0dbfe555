package store

import (
	"errors"
	"strconv"
)

// Package store holds the Storoo data model and the Store interface that
// handlers depend on. The only production implementation is the Supabase
// client in supabase.go; tests substitute fakes.

// ErrNotFound reports that a single-row lookup matched nothing. The store
// reports it for both missing bookings and an empty location table; handlers
// decide the wire status per endpoint.
var ErrNotFound = errors.New("not found")

// Store is the table-scoped persistence surface used by all handlers.
// One long-lived implementation is shared across requests.
type Store interface {
	// InsertUser inserts one user row and returns it with the generated id.
	InsertUser(u NewUser) (User, error)
	// InsertUsers inserts user rows verbatim and returns the inserted rows.
	InsertUsers(rows []NewUser) ([]User, error)
	// Locations returns every storage_locations row, unfiltered.
	Locations() ([]Location, error)
	// FirstLocation returns an arbitrary existing location, or ErrNotFound
	// when the table is empty.
	FirstLocation() (Location, error)
	// InsertBooking inserts one booking row and returns the inserted rows.
	InsertBooking(b NewBooking) ([]Booking, error)
	// BookingByID returns the booking with its user and location rows
	// embedded, or ErrNotFound.
	BookingByID(id string) (BookingRecord, error)
}

// NewUser is the insert payload for the users table.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// User is a users row as returned by the store.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Location is a storage_locations row. Columns vary by deployment, so rows
// pass through to callers unmodified.
type Location map[string]any

// ID returns the row id as a string. Supabase deployments use uuid or
// numeric primary keys; both are accepted.
func (l Location) ID() string {
	switch v := l["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// NewBooking is the insert payload for the bookings table.
type NewBooking struct {
	UserID      string `json:"user_id"`
	LocationID  string `json:"location_id"`
	LuggageType string `json:"luggage_type"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Booking is a bookings row as returned by the store.
type Booking struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	LocationID  string `json:"location_id"`
	LuggageType string `json:"luggage_type"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// BookingRecord is a bookings row with its referenced user and location rows
// embedded, as produced by a relational select.
type BookingRecord struct {
	Booking
	User     User     `json:"users"`
	Location Location `json:"storage_locations"`
}
