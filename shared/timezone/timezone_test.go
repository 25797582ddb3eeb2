package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "UTC"},
		{name: "unknown", in: "Mars/Olympus", want: "UTC"},
		{name: "lagos", in: "Africa/Lagos", want: "Africa/Lagos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, load(tt.in).String())
		})
	}
}

func TestNow(t *testing.T) {
	before := time.Now()
	now := Now()

	assert.Equal(t, location, now.Location())
	assert.False(t, now.Before(before))
}

func TestISO(t *testing.T) {
	wat := time.FixedZone("WAT", 3600)

	assert.Equal(t, "2025-03-14T09:30:00.250Z", ISO(time.Date(2025, 3, 14, 10, 30, 0, 250_000_000, wat)))
	assert.Equal(t, "2025-03-14T09:30:00.000Z", ISO(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)))
}
