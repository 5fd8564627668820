package logging

import (
	"strconv"
	"strings"

	"github.com/Station-Manager/errors"
)

// Level is the severity attached to a formatted message.
type Level uint8

const (
	// LevelDebug tags verbose diagnostic messages.
	LevelDebug Level = iota
	// LevelInfo tags normal client activity.
	LevelInfo
	// LevelWarning tags unexpected conditions the client can recover from.
	LevelWarning
	// LevelError tags failures.
	LevelError

	levelCount
)

var levelTags = [levelCount]string{
	LevelDebug:   "[PUSHER DEBUG]",
	LevelInfo:    "[PUSHER INFO]",
	LevelWarning: "[PUSHER WARNING]",
	LevelError:   "[PUSHER ERROR]",
}

var levelNames = [levelCount]string{
	LevelDebug:   "debug",
	LevelInfo:    "info",
	LevelWarning: "warning",
	LevelError:   "error",
}

// Levels returns every severity, lowest first.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarning, LevelError}
}

// Tag returns the bracketed label that prefixes every message of this severity.
func (l Level) Tag() string {
	if l < levelCount {
		return levelTags[l]
	}
	return "[PUSHER " + l.String() + "]"
}

// String returns the lower-case level name.
func (l Level) String() string {
	if l < levelCount {
		return levelNames[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive and
// accepts "warn" and "err" as aliases.
func ParseLevel(s string) (Level, error) {
	const op errors.Op = "logging.ParseLevel"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	}
	return LevelInfo, errors.New(op).Msg(errMsgUnknownLevel + ": " + strconv.Quote(s))
}
