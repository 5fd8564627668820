package logging

import (
	"fmt"
	"strings"
)

// Debug returns the debug-tagged line for event.
func Debug(event Event, context ...any) string {
	return Format(LevelDebug, event, context...)
}

// Info returns the info-tagged line for event.
func Info(event Event, context ...any) string {
	return Format(LevelInfo, event, context...)
}

// Warning returns the warning-tagged line for event.
func Warning(event Event, context ...any) string {
	return Format(LevelWarning, event, context...)
}

// Error returns the error-tagged line for event.
func Error(event Event, context ...any) string {
	return Format(LevelError, event, context...)
}

// Format composes "<tag> <description>[ <context>...]".
//
// Context values are rendered as fmt.Sprint would render them and appended in
// order, each after a single space. Nil values contribute nothing, so a call
// with no context (or only nil) produces no trailing space.
func Format(level Level, event Event, context ...any) string {
	tag := level.Tag()
	desc := event.Description()

	if !hasContext(context) {
		return tag + " " + desc
	}

	var b strings.Builder
	b.Grow(len(tag) + len(desc) + 1 + 16*len(context))
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(desc)
	for _, c := range context {
		if c == nil {
			continue
		}
		b.WriteByte(' ')
		writeContext(&b, c)
	}
	return b.String()
}

func hasContext(context []any) bool {
	for _, c := range context {
		if c != nil {
			return true
		}
	}
	return false
}

// contextString renders the context values exactly as Format appends them,
// without the leading separator. It returns "" when no context is present.
func contextString(context []any) string {
	if !hasContext(context) {
		return emptyString
	}
	var b strings.Builder
	first := true
	for _, c := range context {
		if c == nil {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeContext(&b, c)
	}
	return b.String()
}

func writeContext(b *strings.Builder, c any) {
	switch v := c.(type) {
	case string:
		b.WriteString(v)
	default:
		fmt.Fprint(b, v)
	}
}
