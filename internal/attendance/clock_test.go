package attendance

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"07:59 AM", 7*60 + 59, false},
		{"02:05 PM", 14*60 + 5, false},
		{"12:00 AM", 0, false},
		{"12:30 AM", 30, false},
		{"12:00 PM", 12 * 60, false},
		{"12:45 PM", 12*60 + 45, false},
		{"11:59 PM", 23*60 + 59, false},
		{"07:59", 0, true},
		{"7 AM", 0, true},
		{"aa:bb AM", 0, true},
		{"07:59 XX", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestComputeDuration(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		want              string
	}{
		{"07:59 AM", "02:05 PM", "6h 6m"},
		{"09:00 AM", "05:30 PM", "8h 30m"},
		{"12:00 AM", "12:00 PM", "12h 0m"},
		{"10:15 AM", "10:15 AM", "0h 0m"},
	}
	for _, tc := range cases {
		got, err := ComputeDuration(tc.checkIn, tc.checkOut)
		if err != nil {
			t.Fatalf("ComputeDuration(%q, %q): %v", tc.checkIn, tc.checkOut, err)
		}
		if got != tc.want {
			t.Errorf("ComputeDuration(%q, %q) = %q, want %q", tc.checkIn, tc.checkOut, got, tc.want)
		}
	}
}

func TestValidClock(t *testing.T) {
	if !ValidClock("08:00 AM") {
		t.Error("expected 08:00 AM to be valid")
	}
	if ValidClock("25:00") {
		t.Error("expected 25:00 to be invalid")
	}
}
