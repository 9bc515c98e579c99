package sitebook

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestDateOf(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 6, 30, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	if DateOf(morning) != DateOf(evening) {
		t.Error("two timestamps on the same local day must map to the same Date")
	}
	if DateOf(morning) != NewDate(2025, time.March, 10) {
		t.Errorf("DateOf = %v, want 2025-03-10", DateOf(morning))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2025-03-03T09:00:00Z", NewDate(2025, time.March, 3), false},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2025, time.March, 1)
	if got := d.Add(-1); got != NewDate(2025, time.February, 28) {
		t.Errorf("Add(-1) = %v, want 2025-02-28 (month rollover)", got)
	}
	if got := d.Add(31); got != NewDate(2025, time.April, 1) {
		t.Errorf("Add(31) = %v, want 2025-04-01", got)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.March, 10)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(b) != `"2025-03-10"` {
		t.Errorf("MarshalJSON() = %s, want \"2025-03-10\"", b)
	}

	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
