package pagination

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := New(nil, nil)
		if p.From != DefaultFrom || p.Size != DefaultSize {
			t.Errorf("expected defaults, got %+v", p)
		}
	})

	t.Run("Explicit Values Pass Through", func(t *testing.T) {
		p := New(intPtr(20), intPtr(5))
		if p.From != 20 || p.Size != 5 {
			t.Errorf("explicit values lost: %+v", p)
		}
	})

	t.Run("Invalid Values Still Fail Validate", func(t *testing.T) {
		if err := New(intPtr(-1), nil).Validate(); !errors.Is(err, ErrNegativeFrom) {
			t.Errorf("expected ErrNegativeFrom, got %v", err)
		}
		if err := New(nil, intPtr(0)).Validate(); !errors.Is(err, ErrNonPositiveSize) {
			t.Errorf("expected ErrNonPositiveSize, got %v", err)
		}
	})
}

func TestOffset(t *testing.T) {
	// Offset snaps to the start of the page containing from.
	cases := []struct {
		from, size, want int
	}{
		{0, 10, 0},
		{10, 10, 10},
		{15, 10, 10},
		{7, 3, 6},
		{25, 10, 20},
	}
	for _, tc := range cases {
		p := Params{From: tc.from, Size: tc.size}
		if got := p.Offset(); got != tc.want {
			t.Errorf("Offset(from=%d,size=%d) = %d, want %d", tc.from, tc.size, got, tc.want)
		}
		if p.Limit() != tc.size {
			t.Errorf("Limit(size=%d) = %d", tc.size, p.Limit())
		}
	}
}
