package logger

import "testing"

func TestNewAcceptsModesAndLevels(t *testing.T) {
	cases := []struct {
		mode  string
		level string
	}{
		{"development", ""},
		{"production", "info"},
		{"PROD", "WARN"},
		{"", "error"},
	}
	for _, tc := range cases {
		log, err := New(tc.mode, tc.level)
		if err != nil {
			t.Fatalf("New(%q, %q): %v", tc.mode, tc.level, err)
		}
		log.With("component", "test").Debug("hello", "k", "v")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("development", "chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
