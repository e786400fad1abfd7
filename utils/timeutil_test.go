package utils

import "testing"

func TestParseClock(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"08:00": 480,
			"10:30": 630,
			"23:59": 1439,
		}
		for in, want := range cases {
			got, err := ParseClock(in)
			if err != nil {
				t.Fatalf("ParseClock(%q) returned error: %v", in, err)
			}
			if got != want {
				t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
			}
		}
	})

	t.Run("invalid times are rejected", func(t *testing.T) {
		for _, in := range []string{"", "8:00", "24:00", "12:60", "12-30", "ab:cd", "12:3", "120:30"} {
			if _, err := ParseClock(in); err == nil {
				t.Fatalf("ParseClock(%q) should fail", in)
			}
		}
	})
}

func TestOverlaps(t *testing.T) {
	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		if Overlaps(480, 600, 600, 660) {
			t.Fatalf("08:00-10:00 and 10:00-11:00 must not overlap")
		}
		if Overlaps(600, 660, 480, 600) {
			t.Fatalf("touching intervals must not overlap in either order")
		}
	})

	t.Run("partial overlap detected", func(t *testing.T) {
		if !Overlaps(480, 600, 570, 660) {
			t.Fatalf("08:00-10:00 and 09:30-11:00 must overlap")
		}
	})

	t.Run("containment detected", func(t *testing.T) {
		if !Overlaps(480, 720, 540, 600) {
			t.Fatalf("contained interval must overlap")
		}
	})

	t.Run("disjoint intervals do not overlap", func(t *testing.T) {
		if Overlaps(480, 540, 600, 660) {
			t.Fatalf("disjoint intervals must not overlap")
		}
	})
}

func TestOverlapsInclusive(t *testing.T) {
	// Biên đóng: chạm đầu mút vẫn tính là trùng
	if !OverlapsInclusive(480, 600, 600, 660) {
		t.Fatalf("inclusive check must flag touching endpoints")
	}
	if OverlapsInclusive(480, 540, 600, 660) {
		t.Fatalf("inclusive check must not flag disjoint intervals")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01/06/2025")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Day() != 1 || int(d.Month()) != 6 || d.Year() != 2025 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("date must be normalized to midnight: %v", d)
	}

	if _, err := ParseDate("2025-06-01"); err == nil {
		t.Fatalf("ISO layout must be rejected")
	}
}
