// Package logging formats the Pusher client's internal events as
// severity-tagged, human-readable log lines, and provides an optional
// zerolog-backed sink for emitting them.
//
// # Formatting
//
// The formatter is a set of pure functions over two closed catalogs, Level
// and Event:
//
//	logging.Debug(logging.PingSent)
//	// "[PUSHER DEBUG] Ping sent"
//	logging.Error(logging.DisconnectionWithError, "timeout")
//	// "[PUSHER ERROR] Websocket is disconnected. Error timeout"
//
// A line is always "<tag> <description>", followed by " <context>" for each
// context value supplied. The functions hold no state and are safe for
// concurrent use. They never filter by level: that is the caller's decision.
//
// # Sink
//
// Service is a ready-made consumer. It filters by a configured minimum level
// and writes to the console (zerolog.ConsoleWriter or JSON) and/or a rolling
// file via lumberjack:
//
//	cfg, err := logging.LoadConfig("logging.yaml")
//	if err != nil { return err }
//	svc := logging.NewService(cfg)
//	if err := svc.Initialize(); err != nil { return err }
//	defer svc.Close()
//
//	svc.Info(logging.ConnectionEstablished, socketID)
package logging
