package config

import "testing"

func TestParseStateID(t *testing.T) {
	tests := []struct {
		key    string
		wantID StateID
		wantOK bool
	}{
		{"Default", StateDefault, true},
		{"Volume1", StateVolume1, true},
		{"Volume2", StateVolume2, true},
		{"Volume3", StateVolume3, true},
		{"Volume9", StateID(-1), false},
		{"", StateID(-1), false},
	}

	for _, tt := range tests {
		id, ok := ParseStateID(tt.key)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ParseStateID(%q): expected (%v, %v), got (%v, %v)", tt.key, tt.wantID, tt.wantOK, id, ok)
		}
	}
}

func TestStateIDKeyRoundTrip(t *testing.T) {
	for id := range StateNames {
		got, ok := ParseStateID(id.Key())
		if !ok || got != id {
			t.Errorf("Expected %v to round trip through %q, got %v", id, id.Key(), got)
		}
	}
	if StateID(7).Key() != "" {
		t.Error("Expected no key for an unknown state")
	}
	if StateID(7).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", StateID(7).String())
	}
}

func TestActionNames(t *testing.T) {
	if ActionUp.String() != "up" || ActionRight.String() != "right" {
		t.Errorf("Expected up/right, got %s/%s", ActionUp, ActionRight)
	}
	if ActionNone.String() != "none" {
		t.Errorf("Expected none, got %s", ActionNone)
	}
}
