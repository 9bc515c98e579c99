package sitebook

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	// Skip diagnostics are part of normal operation, keep test output clean.
	SetLogger(zerolog.Nop())
	os.Exit(m.Run())
}

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }

// at is a helper for tests to build a timestamp on a given day and hour, UTC.
func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// f is a helper for tests to take the address of a float constant.
func f(v float64) *float64 { return &v }
