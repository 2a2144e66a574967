package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelGate(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "", 0)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("Debug emitted output at InfoLevel")
	}
	if !errors.Is(logger.Err(), ErrOutputDiscardedByLevel) {
		t.Errorf("Err = %v, want ErrOutputDiscardedByLevel", logger.Err())
	}

	logger.Info("visible")
	if buf.Len() == 0 {
		t.Error("Info emitted nothing at InfoLevel")
	}
	if logger.Err() != nil {
		t.Errorf("Err after Info = %v", logger.Err())
	}

	logger.SetLevel(DebugLevel)
	buf.Reset()
	logger.Debugf("answer=%d", 42)
	out := buf.String()
	if !strings.Contains(out, DebugPrefix) || !strings.Contains(out, "answer=42") {
		t.Errorf("Debug output = %q", out)
	}
}

func TestErrLatchesWriteFailure(t *testing.T) {
	errWriter := writerFunc(func(p []byte) (int, error) {
		return 0, errors.New("sink closed")
	})
	logger := New(errWriter, "", 0)
	logger.Info("drop")
	if logger.Err() == nil {
		t.Error("Err = nil after a failed write")
	}

	logger.SetOutput(new(bytes.Buffer))
	logger.Info("ok")
	if logger.Err() != nil {
		t.Errorf("Err after recovery = %v", logger.Err())
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
