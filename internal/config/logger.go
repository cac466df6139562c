package config

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the diagnostic logger. Generation code only logs at
// debug level, so it stays silent unless debug is set or DEBUG=true.
func NewLogger(w io.Writer, debug bool) *zap.SugaredLogger {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encConfig.EncodeCaller = nil
	encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.StampMicro))
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if val, ok := os.LookupEnv("DEBUG"); ok && strings.EqualFold(val, "true") {
		debug = true
	}
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encConfig), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
