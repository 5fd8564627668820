package logging

import "strconv"

// Event identifies a condition of interest inside the Pusher client.
// The set is closed: every value below has a fixed description and category.
type Event uint8

const (
	// Channels

	PresenceChannelSubscriptionAttemptWithoutChannelData Event = iota
	SubscriptionSucceededNoDataInPayload

	// Events

	ClientEventSent
	EventSent
	SkippedEventAfterDecryptionFailure

	// Network

	NetworkReachable
	NetworkUnreachable

	// Websockets

	AttemptReconnectionAfterReachabilityChange
	ConnectionEstablished
	DisconnectionWithError
	DisconnectionWithoutError
	IntentionalDisconnection
	MaxReconnectAttemptsLimitReached
	ReconnectionFailureLikely
	PingSent
	PongReceived
	ReceivedMessage
	UnableToHandleIncomingError
	UnableToHandleIncomingMessage

	eventCount
)

// Category groups related events.
type Category uint8

const (
	CategoryChannel Category = iota + 1
	CategoryEvent
	CategoryDecryption
	CategoryNetwork
	CategoryWebsocket
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryChannel:
		return "channel"
	case CategoryEvent:
		return "event"
	case CategoryDecryption:
		return "decryption"
	case CategoryNetwork:
		return "network"
	case CategoryWebsocket:
		return "websocket"
	default:
		return "unknown"
	}
}

type eventInfo struct {
	name        string
	description string
	category    Category
}

var events = [eventCount]eventInfo{
	PresenceChannelSubscriptionAttemptWithoutChannelData: {
		"presenceChannelSubscriptionAttemptWithoutChannelData",
		"Attempting to subscribe to presence channel but no channelData value provided",
		CategoryChannel,
	},
	SubscriptionSucceededNoDataInPayload: {
		"subscriptionSucceededNoDataInPayload",
		"Subscription succeeded event received without data key in payload",
		CategoryChannel,
	},

	ClientEventSent: {"clientEventSent", "sendClientEvent", CategoryEvent},
	EventSent:       {"eventSent", "sendEvent", CategoryEvent},
	SkippedEventAfterDecryptionFailure: {
		"skippedEventAfterDecryptionFailure",
		"Skipping event that failed to decrypt on channel",
		CategoryDecryption,
	},

	NetworkReachable:   {"networkReachable", "Network reachable", CategoryNetwork},
	NetworkUnreachable: {"networkUnreachable", "Network unreachable", CategoryNetwork},

	AttemptReconnectionAfterReachabilityChange: {
		"attemptReconnectionAfterReachabilityChange",
		"Connection state is 'connected' but received network reachability change so going to call attemptReconnect",
		CategoryWebsocket,
	},
	ConnectionEstablished:            {"connectionEstablished", "Socket established with socket ID:", CategoryWebsocket},
	DisconnectionWithError:           {"disconnectionWithError", "Websocket is disconnected. Error", CategoryWebsocket},
	DisconnectionWithoutError:        {"disconnectionWithoutError", "Websocket is disconnected but no error received", CategoryWebsocket},
	IntentionalDisconnection:         {"intentionalDisconnection", "Deliberate disconnection - skipping reconnect attempts", CategoryWebsocket},
	MaxReconnectAttemptsLimitReached: {"maxReconnectAttemptsLimitReached", "Max reconnect attempts reached", CategoryWebsocket},
	ReconnectionFailureLikely:        {"reconnectionFailureLikely", "Network unreachable so reconnect likely to fail", CategoryWebsocket},
	PingSent:                         {"pingSent", "Ping sent", CategoryWebsocket},
	PongReceived:                     {"pongReceived", "Websocket received pong", CategoryWebsocket},
	ReceivedMessage:                  {"receivedMessage", "websocketDidReceiveMessage", CategoryWebsocket},
	UnableToHandleIncomingError:      {"unableToHandleIncomingError", "Unable to handle incoming error", CategoryWebsocket},
	UnableToHandleIncomingMessage:    {"unableToHandleIncomingMessage", "Unable to handle incoming Websocket message", CategoryWebsocket},
}

// Events returns the whole catalog in declaration order.
func Events() []Event {
	out := make([]Event, 0, eventCount)
	for e := Event(0); e < eventCount; e++ {
		out = append(out, e)
	}
	return out
}

// Description returns the human-readable text for the event.
func (e Event) Description() string {
	if e < eventCount {
		return events[e].description
	}
	return e.String()
}

// Name returns the stable identifier used as the structured "event" field.
func (e Event) Name() string {
	if e < eventCount {
		return events[e].name
	}
	return "Event(" + strconv.Itoa(int(e)) + ")"
}

// String returns the same identifier as Name.
func (e Event) String() string {
	return e.Name()
}

// Category returns the group the event belongs to. Values outside the catalog
// report the zero Category.
func (e Event) Category() Category {
	if e < eventCount {
		return events[e].category
	}
	return 0
}
