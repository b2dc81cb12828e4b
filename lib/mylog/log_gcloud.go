package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGloudLogger
		// Cloud Logging parses each line as json and adds the timestamp itself
		log.SetFlags(0)
	}
}

type structuredLogger struct {
	componentName string
	out           *json.Encoder
}

func newGloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		out:           json.NewEncoder(os.Stdout),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...interface{}) {
	labels := map[string]string{"component": l.componentName}
	if traceLabel != "" {
		labels["uid"] = traceLabel
	}

	err := l.out.Encode(entry{
		Labels:   labels,
		Trace:    mycontext.TraceFromContext(ctx),
		Severity: string(severity),
		Message:  fmt.Sprintf(format, a...),
	})
	if err != nil {
		log.Printf("error encoding log entry: %s", err)
	}
}

// entry uses the field names of the Cloud Logging structured payload
type entry struct {
	Labels   map[string]string `json:"logging.googleapis.com/labels,omitempty"`
	Trace    string            `json:"logging.googleapis.com/trace,omitempty"`
	Severity string            `json:"severity,omitempty"`
	Message  string            `json:"message"`
}
