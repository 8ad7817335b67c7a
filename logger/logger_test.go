package logger

import (
	"testing"
)

func TestInitializeConsole(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(false) = %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
	// Wrappers must be safe to call.
	Infow("console logger ready", "test", true)
	Cleanup()
}

func TestInitializeJSON(t *testing.T) {
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(true) = %v", err)
	}
	Infow("json logger ready", "test", true)
	Cleanup()
}

func TestNopBeforeInitialize(t *testing.T) {
	// The package-level no-op logger must absorb calls made before
	// Initialize without panicking.
	Debugw("early message")
	Warnw("early warning")
	Errorw("early error")
}
