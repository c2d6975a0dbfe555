package store

import (
	"fmt"

	supabase "github.com/supabase-community/supabase-go"
)

// Client implements Store on top of the Supabase PostgREST API. It is
// constructed once at startup and shared by every handler; the underlying
// HTTP client is safe for concurrent use.
type Client struct {
	sb *supabase.Client
}

var _ Store = (*Client)(nil)

// NewClient connects a Store to the Supabase project at url.
func NewClient(url, key string) (*Client, error) {
	sb, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("supabase client: %w", err)
	}
	return &Client{sb: sb}, nil
}

func (c *Client) InsertUser(u NewUser) (User, error) {
	var out User
	_, err := c.sb.From("users").
		Insert([]NewUser{u}, false, "", "representation", "").
		Single().
		ExecuteTo(&out)
	if err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) InsertUsers(rows []NewUser) ([]User, error) {
	var out []User
	_, err := c.sb.From("users").
		Insert(rows, false, "", "representation", "").
		ExecuteTo(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Locations() ([]Location, error) {
	var out []Location
	_, err := c.sb.From("storage_locations").
		Select("*", "", false).
		ExecuteTo(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FirstLocation selects a single row with no filter. A limit-1 select is
// used instead of PostgREST's single-object mode so an empty table surfaces
// as ErrNotFound rather than an opaque PGRST error.
func (c *Client) FirstLocation() (Location, error) {
	var out []Location
	_, err := c.sb.From("storage_locations").
		Select("*", "", false).
		Limit(1, "").
		ExecuteTo(&out)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out[0], nil
}

func (c *Client) InsertBooking(b NewBooking) ([]Booking, error) {
	var out []Booking
	_, err := c.sb.From("bookings").
		Insert([]NewBooking{b}, false, "", "representation", "").
		ExecuteTo(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookingByID(id string) (BookingRecord, error) {
	var out []BookingRecord
	_, err := c.sb.From("bookings").
		Select("*, users (*), storage_locations (*)", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&out)
	if err != nil {
		return BookingRecord{}, err
	}
	if len(out) == 0 {
		return BookingRecord{}, ErrNotFound
	}
	return out[0], nil
}
