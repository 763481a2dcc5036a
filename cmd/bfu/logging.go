package main

import (
	"fmt"
	"strings"

	"github.com/wonderivan/logger"
)

// logLevels maps -v counts to the console logger's level tags.
var logLevels = []string{"WARN", "INFO", "DEBG"}

// configureLogging sets the process-wide log level from the repeatable -v
// flag. Without -v only warnings and errors get through.
func configureLogging(verbosity int) {
	if verbosity >= len(logLevels) {
		verbosity = len(logLevels) - 1
	}
	_ = logger.SetLogger(fmt.Sprintf(`{"Console": {"level": "%s", "color": true}}`, logLevels[verbosity]))
}

// sessionLogger adapts the process logger to the key/value logging the
// transfer session emits.
type sessionLogger struct{}

func (sessionLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Debug("%s", withFields(msg, keysAndValues))
}

func (sessionLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Info("%s", withFields(msg, keysAndValues))
}

func (sessionLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Error("%s", withFields(msg, keysAndValues))
}

// withFields renders trailing key/value pairs the way structured loggers
// print them: "msg k=v k=v".
func withFields(msg string, kv []interface{}) string {
	if len(kv) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 != 0 {
		fmt.Fprintf(&b, " %v=?", kv[len(kv)-1])
	}
	return b.String()
}
