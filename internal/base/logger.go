package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
)

const logDirectory = "logs"

var (
	debugTag = color.New(color.FgHiBlack).Sprint("DEBUG")
	infoTag  = color.New(color.FgGreen).Sprint(" INFO")
	warnTag  = color.New(color.FgYellow).Sprint(" WARN")
	errorTag = color.New(color.FgRed).Sprint("ERROR")
	fatalTag = color.New(color.FgHiRed, color.Bold).Sprint("FATAL")
)

type LoggerShutdownCallback struct {
	logFile *os.File
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logFile == nil {
		return nil
	}
	return lc.logFile.Close()
}

// Logger 標準出力には色付きで、ファイルにはslogのテキスト形式で出力する。
type Logger struct {
	debug   bool
	logFile *os.File
	slogger *slog.Logger
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Init(debug bool) {
	l.debug = debug

	if err := os.MkdirAll(logDirectory, global.DefaultDirectoryPermission); err != nil {
		fmt.Printf("Fail to create log directory: %v\n", err)
	} else {
		fileName := filepath.Join(logDirectory, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02_15-04-05")))
		if file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions); err != nil {
			fmt.Printf("Fail to open log file: %v\n", err)
		} else {
			l.logFile = file
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if l.logFile != nil {
		l.slogger = slog.New(slog.NewTextHandler(l.logFile, &slog.HandlerOptions{Level: level}))
	}
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logFile: l.logFile}
}

func (l *Logger) output(level slog.Level, tag, msg string, v ...interface{}) {
	if level == slog.LevelDebug && !l.debug {
		return
	}
	fmt.Printf("[%s] [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), tag, msg)
	if l.slogger != nil {
		l.slogger.Log(context.Background(), level, msg, v...)
	}
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.output(slog.LevelDebug, debugTag, msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) {
	l.output(slog.LevelDebug, debugTag, fmt.Sprintf(msg, v...))
}

func (l *Logger) Info(msg string, v ...interface{}) { l.output(slog.LevelInfo, infoTag, msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) {
	l.output(slog.LevelInfo, infoTag, fmt.Sprintf(msg, v...))
}

func (l *Logger) Warn(msg string, v ...interface{}) { l.output(slog.LevelWarn, warnTag, msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) {
	l.output(slog.LevelWarn, warnTag, fmt.Sprintf(msg, v...))
}

func (l *Logger) Error(msg string, v ...interface{}) { l.output(slog.LevelError, errorTag, msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) {
	l.output(slog.LevelError, errorTag, fmt.Sprintf(msg, v...))
}

func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.output(slog.LevelError, fatalTag, msg, v...)
	_ = l.ShutdownCallback().Invoke(context.Background())
	os.Exit(1)
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.Fatal(fmt.Sprintf(msg, v...))
}
