package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestErrFmtHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Error("fit failed", ErrAttr(errors.New("singular matrix")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	trace, ok := record[StacktraceAttrKey].(string)
	if !ok || trace == "" {
		t.Errorf("record %v missing %q attribute", record, StacktraceAttrKey)
	}
}

func TestErrFmtHandler_PassThroughWithoutError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Info("inference started", "genes", 100)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if _, present := record[StacktraceAttrKey]; present {
		t.Error("stacktrace attribute present without an error attribute")
	}
	if record["genes"] != float64(100) {
		t.Errorf("genes = %v, want 100", record["genes"])
	}
}

func TestToLogLevel(t *testing.T) {
	if got := ToLogLevel("debug"); got != slog.LevelDebug {
		t.Errorf("ToLogLevel(debug) = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid level")
		}
	}()
	ToLogLevel("verbose")
}
