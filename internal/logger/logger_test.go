package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferedLogger(buf *bytes.Buffer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// The catalog degrades instead of failing on hierarchy anomalies, so the
// Warn entry is often the only trace of a broken parent link or a failed
// read. These entries must stay machine-parseable with their context fields.
func TestProperty_DegradationWarningsAreStructured(t *testing.T) {
	properties := gopter.NewProperties(nil)

	messages := []string{
		"ancestor walk hit broken parent link",
		"ancestor walk detected a parent cycle",
		"descendant expansion degraded to the input category",
		"primary category unresolvable for breadcrumbs",
	}

	properties.Property("degradation warnings keep their category context", prop.ForAll(
		func(pick int, categoryID string, parentID string) bool {
			if pick < 0 {
				pick = -pick
			}

			var buf bytes.Buffer
			logger := newBufferedLogger(&buf)
			defer logger.Sync()

			logger.Warn(messages[pick%len(messages)],
				zap.String("category_id", categoryID),
				zap.String("parent_id", parentID),
			)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				return false
			}
			return entry["level"] == "warn" &&
				entry["category_id"] == categoryID &&
				entry["parent_id"] == parentID &&
				entry["timestamp"] != nil
		},
		gen.Int(),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_EntriesAreSingleJSONObjects(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every entry is one parseable JSON object with level and message", prop.ForAll(
		func(slug string, page int) bool {
			var buf bytes.Buffer
			logger := newBufferedLogger(&buf)
			defer logger.Sync()

			logger.Info("catalog page requested",
				zap.String("category_slug", slug),
				zap.Int("page", page),
			)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				return false
			}
			if entry["message"] != "catalog page requested" {
				return false
			}
			if entry["category_slug"] != slug {
				return false
			}
			// encoding/json decodes numbers as float64
			return entry["page"] == float64(page)
		},
		gen.AlphaString(),
		gen.IntRange(1, 500),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestErrorEntriesCarryTheWrappedCause(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)
	defer logger.Sync()

	logger.Error("Failed to load product page",
		zap.String("category_slug", "cartes-graphiques"),
		zap.String("error", "failed to fetch catalog page: rpc error: unavailable"),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("entry not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["error"] != "failed to fetch catalog page: rpc error: unavailable" {
		t.Errorf("cause not carried: %v", entry["error"])
	}
	if entry["category_slug"] != "cartes-graphiques" {
		t.Errorf("context not carried: %v", entry["category_slug"])
	}
}

func TestNewByEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := New(env)
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", env)
		}
		logger.Sync()
	}
}
