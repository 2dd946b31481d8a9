package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldRequestID is the structured log field key for the analysis request id.
	FieldRequestID = "request_id"
	// FieldPipeline names the pipeline (resume or feedback) a log entry belongs to.
	FieldPipeline = "pipeline"
)

// Output names for New. Any other value is treated as a file path.
const (
	Stdout = "stdout"
	Stderr = "stderr"
)

// New builds the process logger writing to output. An empty output means
// stdout.
func New(json bool, debug bool, output string) (*zap.Logger, error) {
	if strings.TrimSpace(output) == "" {
		output = Stdout
	}

	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ForRequest attaches the pipeline name and request id to the logger.
// Empty values are skipped.
func ForRequest(l *zap.Logger, pipeline, requestID string) *zap.Logger {
	l = OrNop(l)

	fields := make([]zap.Field, 0, 2)
	if p := strings.TrimSpace(pipeline); p != "" {
		fields = append(fields, zap.String(FieldPipeline, p))
	}
	if id := strings.TrimSpace(requestID); id != "" {
		fields = append(fields, zap.String(FieldRequestID, id))
	}
	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
