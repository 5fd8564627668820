package logging

// LogContext builds a child Logger whose records carry pre-populated fields,
// e.g. the socket ID or channel name a Pusher connection logs under.
//
// Example: chLogger := svc.With().Str("channel", "private-orders").Logger()
type LogContext interface {
	Str(key, val string) LogContext
	Int(key string, val int) LogContext
	Bool(key string, val bool) LogContext
	Interface(key string, val any) LogContext
	// Logger creates and returns the new context logger
	Logger() Logger
}

type logContext struct {
	service *Service
	fields  []any
}

// contextLogger shares its parent's lifecycle: it is silent until the parent
// is initialized and again after the parent is closed.
type contextLogger struct {
	parent *Service
	fields []any
}

var _ Logger = (*contextLogger)(nil)

// With returns a LogContext for creating a child logger with pre-populated fields.
func (s *Service) With() LogContext {
	return &logContext{service: s}
}

func (c *logContext) add(key string, val any) LogContext {
	fields := make([]any, len(c.fields), len(c.fields)+2)
	copy(fields, c.fields)
	return &logContext{service: c.service, fields: append(fields, key, val)}
}

func (c *logContext) Str(key, val string) LogContext           { return c.add(key, val) }
func (c *logContext) Int(key string, val int) LogContext       { return c.add(key, val) }
func (c *logContext) Bool(key string, val bool) LogContext     { return c.add(key, val) }
func (c *logContext) Interface(key string, val any) LogContext { return c.add(key, val) }

func (c *logContext) Logger() Logger {
	if c.service == nil {
		return Nop()
	}
	return &contextLogger{parent: c.service, fields: c.fields}
}

func (cl *contextLogger) Debug(event Event, context ...any) {
	cl.parent.emit(cl.fields, LevelDebug, event, context)
}

func (cl *contextLogger) Info(event Event, context ...any) {
	cl.parent.emit(cl.fields, LevelInfo, event, context)
}

func (cl *contextLogger) Warning(event Event, context ...any) {
	cl.parent.emit(cl.fields, LevelWarning, event, context)
}

func (cl *contextLogger) Error(event Event, context ...any) {
	cl.parent.emit(cl.fields, LevelError, event, context)
}
