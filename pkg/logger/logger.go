package logger

// Field is one structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging capability handed to services.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
