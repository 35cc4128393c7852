package logger

import (
	"github.com/maxaizer/dreamjob-store/internal/config"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
)

const (
	ErrorTypeField = "error_type"
	EntityField    = "entity"
)

const ErrorTypeDb = "db"

var logFile *os.File

func Setup(cfg config.LoggerConfig) {

	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	var err error
	logFile, err = os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)

	customFormatter := &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	}
	log.SetFormatter(customFormatter)
	if cfg.AppName != "" {
		log.AddHook(&appNameHook{appName: cfg.AppName})
	}
	log.AddHook(&errorsCounterHook{})

	log.SetLevel(parseLevel(cfg.LogLevel))
}

func parseLevel(level config.LogLevel) log.Level {
	switch level {
	case config.LevelInfo:
		return log.InfoLevel
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

type appNameHook struct {
	appName string
}

func (h *appNameHook) Fire(entry *log.Entry) error {
	entry.Data["app"] = h.appName
	return nil
}

func (h *appNameHook) Levels() []log.Level {
	return log.AllLevels
}

// errorsCounterHook counts error entries by error type and by the entity
// (user, vacancy) the failed operation was working on.
type errorsCounterHook struct{}

func (h *errorsCounterHook) Fire(entry *log.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}
	entity, ok := entry.Data[EntityField].(string)
	if !ok {
		entity = "none"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType, entity).Inc()
	return nil
}

func (h *errorsCounterHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
