package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New is bound at init-time: structured json on Google Cloud, plain text elsewhere
var New func(componentName string) Logger

// Logger labels every line with the component and the aggregate (basket, visit, order) it concerns
type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}
