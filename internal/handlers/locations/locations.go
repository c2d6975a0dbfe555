package locations

import "github.com/aryan100k/Storoo-Backend/internal/store"

// Package locations provides the storage-location and booking HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - ping.go:   Handler.Ping
// - list.go:   Handler.List
// - book.go:   Handler.Book
// - status.go: Handler.Status

// Handler wires location and booking endpoints to the data store.
type Handler struct{ store store.Store }

// New returns a new locations handler.
func New(s store.Store) *Handler { return &Handler{store: s} }
