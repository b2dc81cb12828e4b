package mylog

import (
	"context"
	"fmt"
	"log"
	"os"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	out           *log.Logger
}

func newStandardLogger(componentName string) Logger {
	return standardLogger{
		componentName: componentName,
		out:           log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...interface{}) {
	if traceLabel == "" {
		traceLabel = "-"
	}
	l.out.Printf("%-5s %s [%s] %s", string(severity), l.componentName, traceLabel, fmt.Sprintf(format, a...))
}
