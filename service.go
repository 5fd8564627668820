package logging

import (
	"io"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is a zerolog-backed sink for catalog events. It applies the
// configured minimum level and routes formatted lines to the console and/or a
// rolling file. Until Initialize succeeds, and after Close, every call is a
// no-op.
type Service struct {
	WorkingDir string
	Config     *Config
	// Output receives console output. Defaults to os.Stderr.
	Output io.Writer

	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	fileWriter    *lumberjack.Logger
	mu            sync.RWMutex
}

// NewService returns a sink for cfg. A nil cfg means DefaultConfig.
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{Config: cfg}
}

// Initialize validates the configuration and opens the writers.
func (s *Service) Initialize() error {
	const op errors.Op = "logging.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return errors.New(op).Msg(errMsgAlreadyStarted)
	}
	if s.Config == nil {
		s.Config = DefaultConfig()
	}
	if err := validateConfig(s.Config); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	level, err := parseLevel(s.Config.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	writers, err := s.initializeWriters()
	if err != nil {
		return err
	}

	var w io.Writer
	if len(writers) == 1 {
		w = writers[0]
	} else {
		w = io.MultiWriter(writers...)
	}

	logger := zerolog.New(w).Level(level)
	if s.Config.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Close stops emission and releases the log file. It is safe to call more than once.
func (s *Service) Close() error {
	const op errors.Op = "logging.Service.Close"
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialized.Swap(false) {
		return nil
	}
	s.logger.Store(nil)

	if s.fileWriter != nil {
		fw := s.fileWriter
		s.fileWriter = nil
		if err := fw.Close(); err != nil {
			return errors.New(op).Err(err).Msg(errMsgCloseFile)
		}
	}
	return nil
}

// Enabled reports whether a message at level would be written.
func (s *Service) Enabled(level Level) bool {
	if s == nil || !s.isInitialized.Load() {
		return false
	}
	logger := s.logger.Load()
	if logger == nil {
		return false
	}
	zl := zerologLevel(level)
	return zl != zerolog.NoLevel && logger.GetLevel() <= zl && zerolog.GlobalLevel() <= zl
}

// Debug emits event at debug level.
func (s *Service) Debug(event Event, context ...any) {
	s.Log(LevelDebug, event, context...)
}

// Info emits event at info level.
func (s *Service) Info(event Event, context ...any) {
	s.Log(LevelInfo, event, context...)
}

// Warning emits event at warning level.
func (s *Service) Warning(event Event, context ...any) {
	s.Log(LevelWarning, event, context...)
}

// Error emits event at error level.
func (s *Service) Error(event Event, context ...any) {
	s.Log(LevelError, event, context...)
}

// Log formats event at level and writes it when level is enabled. The record
// carries the line as its message plus event, category and, when supplied,
// context fields. The first error among the context values is also written
// with its cause chain.
func (s *Service) Log(level Level, event Event, context ...any) {
	s.emit(nil, level, event, context)
}

// emit is the shared write path for the service and its child loggers.
// fields are key/value pairs prepended to every record.
func (s *Service) emit(fields []any, level Level, event Event, context []any) {
	if s == nil || !s.isInitialized.Load() {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Close may have run while we waited for the lock.
	if !s.isInitialized.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}

	zl := zerologLevel(level)
	if zl == zerolog.NoLevel || logger.GetLevel() > zl {
		return
	}
	e := logger.WithLevel(zl)
	if !e.Enabled() {
		return
	}

	if len(fields) > 0 {
		e.Fields(fields)
	}
	e.Str(EventFieldName, event.Name()).
		Str(CategoryFieldName, event.Category().String())
	if hasContext(context) {
		e.Str(ContextFieldName, contextString(context))
	}
	if err := firstError(context); err != nil {
		enrichError(e, err)
	}
	e.Msg(Format(level, event, context...))
}

func enrichError(e *zerolog.Event, err error) {
	chain, ops, root, rootOp := buildErrorChain(err)
	e.Err(err).
		Strs(ErrorChainFieldName, chain).
		Str(ErrorRootFieldName, root).
		Str(ErrorHistoryFieldName, joinChain(chain)).
		Strs(ErrorOpsFieldName, ops)
	if rootOp != emptyString {
		e.Str(ErrorRootOpFieldName, rootOp)
	}
}

// Hook installs zerolog hooks on the underlying logger.
func (s *Service) Hook(hooks ...zerolog.Hook) {
	if s == nil || !s.isInitialized.Load() {
		return
	}

	for {
		oldLogger := s.logger.Load()
		if oldLogger == nil {
			return
		}

		newLogger := oldLogger.Hook(hooks...)

		// Another goroutine may have swapped the logger; retry against the new one.
		if s.logger.CompareAndSwap(oldLogger, &newLogger) {
			break
		}
	}
}
