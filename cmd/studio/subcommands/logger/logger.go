package logger

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

func Null() *log.Logger {
	return log.New(io.Discard, "", log.LstdFlags)
}

func Default() *log.Logger {
	return log.Default()
}

// Rotating is a writer to the log file, rotated at 10MB and kept for 28 days.
func Rotating(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}
