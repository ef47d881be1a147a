package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup points logrus at stdout and, when logFile is set, a rotating file.
// The returned writer is the same sink, for request logs.
func Setup(level, logFile string) (io.Writer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 7,
			MaxAge:     7, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
	}

	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(lvl)
	return out, nil
}

// GormLogger sends SQL logs to out, the sink returned by Setup, with the standard logger's
// format and level. Slow queries are warned about.
func GormLogger(out io.Writer) gormlogger.Interface {
	sqlLog := logrus.New()
	sqlLog.SetOutput(out)
	sqlLog.SetFormatter(logrus.StandardLogger().Formatter)
	sqlLog.SetLevel(logrus.GetLevel())

	level := gormlogger.Warn
	if sqlLog.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(sqlLog, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
