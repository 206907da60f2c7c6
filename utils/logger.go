package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

var (
	// Log консольный логгер приложения
	Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).With().Timestamp().Logger()

	ErrorLogger *zerolog.Logger
	PanicLogger *zerolog.Logger
)

func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	errorLogFile, err := os.OpenFile(filepath.Join(logsDir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open error log file: %w", err)
	}

	panicLogFile, err := os.OpenFile(filepath.Join(logsDir, "panics.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open panic log file: %w", err)
	}

	SetLogOutputs(errorLogFile, panicLogFile)
	return nil
}

// SetLogOutputs переназначает файлы ошибок/паник (в тестах - буферы)
func SetLogOutputs(errOut, panicOut io.Writer) {
	el := zerolog.New(errOut).With().Timestamp().Logger()
	pl := zerolog.New(panicOut).With().Timestamp().Logger()
	ErrorLogger = &el
	PanicLogger = &pl
}

func LogError(err error, context string) {
	file, line := caller(2)
	Log.Error().Err(err).Str("context", context).Str("at", fmt.Sprintf("%s:%d", file, line)).Msg("error")
	if ErrorLogger == nil {
		return
	}
	ErrorLogger.Error().Err(err).Str("context", context).Str("file", file).Int("line", line).Send()
}

func LogPanic(recovered interface{}, context string) {
	file, line := caller(3)
	Log.Error().Interface("panic", recovered).Str("context", context).Msg("panic recovered")
	if PanicLogger == nil {
		return
	}
	PanicLogger.Error().Interface("panic", recovered).Str("context", context).Str("file", file).Int("line", line).Send()
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
