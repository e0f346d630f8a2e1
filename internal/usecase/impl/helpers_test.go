package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that swallows all output so tests stay quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// floatPtr is a small helper for building commission inputs.
func floatPtr(v float64) *float64 {
	return &v
}

// strPtr is a small helper for building partial-update inputs.
func strPtr(v string) *string {
	return &v
}
