// Package repository defines error values shared by the per-aggregate
// repository packages. Sentinels let service and handler layers
// distinguish storage outcomes without depending on driver error types.
package repository

import "errors"

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by the booking repository when an insert would
// overlap an existing active booking for the same event and date, or
// would violate the unique (event, date, start) constraint. Handlers
// translate this into an HTTP 409.
var ErrConflict = errors.New("booking conflict")
