package auth

import "github.com/aryan100k/Storoo-Backend/internal/store"

// Package auth provides the user registration HTTP handler.
// KISS: define a small handler type and a simple constructor.
// The HTTP method is implemented in register.go.

// Handler wires auth endpoints to the data store.
type Handler struct{ store store.Store }

// New returns a new auth handler.
func New(s store.Store) *Handler { return &Handler{store: s} }
