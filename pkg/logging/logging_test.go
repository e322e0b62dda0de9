package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitDoesNotPanic(t *testing.T) {
	// JSON mode (default)
	Init(false, false)
	L().Info().Msg("test json info")
	L().Debug().Msg("test json debug (should not appear at info level)")

	// Debug mode
	Init(true, false)
	L().Debug().Msg("test json debug (should appear)")

	// Pretty mode
	Init(false, true)
	L().Info().Msg("test pretty info")
}

func TestIsPrettyMode(t *testing.T) {
	Init(false, true)
	if !IsPrettyMode() {
		t.Error("IsPrettyMode() = false after Init(false, true)")
	}
	Init(false, false)
	if IsPrettyMode() {
		t.Error("IsPrettyMode() = true after Init(false, false)")
	}
}

func TestWithPhase(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithPhase("encode")
	log.Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, `"phase":"encode"`) {
		t.Errorf("expected phase field in output, got: %s", output)
	}
}
