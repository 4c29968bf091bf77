package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetSinkRoutesNoticeLevelOutput(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Notice)

	logger := New("logger_test")
	logger.Notice("render finished")

	if !strings.Contains(buf.String(), "render finished") {
		t.Fatalf("expected sink to capture the logged message, got %q", buf.String())
	}
}

func TestSetLevelSuppressesLowerSeverity(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Warning)

	logger := New("logger_test")
	logger.Debug("per-tile detail")
	logger.Notice("render start")

	if strings.Contains(buf.String(), "per-tile detail") {
		t.Fatal("expected Debug-level message to be suppressed at Warning level")
	}
	if strings.Contains(buf.String(), "render start") {
		t.Fatal("expected Notice-level message to be suppressed at Warning level")
	}

	logger.Warning("tile deadline missed")
	if !strings.Contains(buf.String(), "tile deadline missed") {
		t.Fatal("expected Warning-level message to reach the sink")
	}
}
