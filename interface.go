package logging

// Logger is the sink side of the package: it decides whether a catalog event is
// emitted and where it goes. *Service implements it.
type Logger interface {
	Debug(event Event, context ...any)
	Info(event Event, context ...any)
	Warning(event Event, context ...any)
	Error(event Event, context ...any)
}

var (
	_ Logger = (*Service)(nil)
	_ Logger = nopLogger{}
)

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(Event, ...any)   {}
func (nopLogger) Info(Event, ...any)    {}
func (nopLogger) Warning(Event, ...any) {}
func (nopLogger) Error(Event, ...any)   {}
