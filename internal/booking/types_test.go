package booking

import (
	"errors"
	"testing"
)

func TestParseState(t *testing.T) {
	valid := map[string]State{
		"":         StateAll,
		"ALL":      StateAll,
		"CURRENT":  StateCurrent,
		"PAST":     StatePast,
		"FUTURE":   StateFuture,
		"WAITING":  StateWaiting,
		"REJECTED": StateRejected,
	}
	for raw, want := range valid {
		got, err := ParseState(raw)
		if err != nil {
			t.Errorf("ParseState(%q): unexpected error %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseState(%q) = %q, want %q", raw, got, want)
		}
	}

	_, err := ParseState("UNSUPPORTED_STATUS")
	var unknown UnknownStateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownStateError, got %v", err)
	}
	if unknown.Error() != "Unknown state: UNSUPPORTED_STATUS" {
		t.Errorf("unexpected message: %q", unknown.Error())
	}
}
