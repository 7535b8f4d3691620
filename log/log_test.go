package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	t.Setenv("MCPDOCS_DEBUG", "false")

	var buf bytes.Buffer
	InitLogger(&buf)
	t.Cleanup(func() { InitLogger(os.Stderr) })

	Debug("debug before")
	Warn("warn before")
	Error("error before")

	SetDebug(true)
	Debug("debug after")

	SetDebug(false)
	Warn("warn after reset")

	out := buf.String()
	for _, want := range []string{"error before", "debug after"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output does not contain %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"debug before", "warn before", "warn after reset"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("log output contains %q:\n%s", unwanted, out)
		}
	}
}
