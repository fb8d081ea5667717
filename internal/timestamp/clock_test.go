package timestamp_test

import (
	"errors"
	"testing"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
)

// ---------------------------------------------------------------------------
// TestNormalize - Time token parsing and zero-padding
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		token       string
		wantString  string
		wantSeconds int
	}{
		{name: "minutes and seconds", token: "5:19", wantString: "00:05:19", wantSeconds: 319},
		{name: "two digit minutes", token: "16:44", wantString: "00:16:44", wantSeconds: 1004},
		{name: "later in stream", token: "22:51", wantString: "00:22:51", wantSeconds: 1371},
		{name: "seconds only, no carry", token: "90", wantString: "00:00:90", wantSeconds: 90},
		{name: "hours minutes seconds", token: "1:02:03", wantString: "01:02:03", wantSeconds: 3723},
		{name: "loose padding", token: "0:0:5", wantString: "00:00:05", wantSeconds: 5},
		{name: "already normalized", token: "00:05:19", wantString: "00:05:19", wantSeconds: 319},
		{name: "minutes overflow kept", token: "75:00", wantString: "00:75:00", wantSeconds: 4500},
		{name: "three digit hours", token: "100:00:00", wantString: "100:00:00", wantSeconds: 360000},
		{name: "zero", token: "0", wantString: "00:00:00", wantSeconds: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := timestamp.Normalize(tt.token)
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.token, err)
			}
			if got := c.String(); got != tt.wantString {
				t.Errorf("Normalize(%q).String() = %q, want %q", tt.token, got, tt.wantString)
			}
			if got := c.TotalSeconds(); got != tt.wantSeconds {
				t.Errorf("Normalize(%q).TotalSeconds() = %d, want %d", tt.token, got, tt.wantSeconds)
			}
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"1:2:3:4",
		"",
		"a:b",
		"5:",
		":19",
		"-1",
		"+5",
		" 5",
		"5:1x",
		"５:１９", // full-width digits
		"99999999999999999999999",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			t.Parallel()

			_, err := timestamp.Normalize(token)
			if !errors.Is(err, timestamp.ErrMalformedTime) {
				t.Errorf("Normalize(%q) error = %v, want ErrMalformedTime", token, err)
			}
		})
	}
}
