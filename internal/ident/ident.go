// Package ident generates the string identifiers the API hands out. The
// external shape is fixed (prefix followed by digits) so records stay
// addressable by the clients that already exist; uniqueness is backed by the
// primary-key constraint in storage, with creation retried on collision.
package ident

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

func ForBooking() string { return timestamped("booking") }

func ForUser() string { return timestamped("user") }

func ForAdmin() string { return timestamped("admin") }

// ForFlight returns ids like flight042. Three digits only; callers retry on
// a duplicate-key error.
func ForFlight() string {
	return fmt.Sprintf("flight%03d", rand.IntN(1000))
}

// ForIATA returns a UUID; IATA code records have no prefixed-id contract.
func ForIATA() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID, for the "Invalid ID format"
// check on IATA code paths.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func timestamped(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}
