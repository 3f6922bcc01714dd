// Package protocol defines the JSON frames exchanged with the lobby server:
// the inbound event envelope with its per-tag payloads, and the outbound
// command frames a client can place.
package protocol

import (
	"encoding/json"

	"github.com/ludopark/lobbyclient/internal/lobby"
)

// EventType tags one inbound frame from the lobby server.
type EventType string

const (
	EventInitialGameList EventType = "initial_game_list"
	EventNewGame         EventType = "new_game"
	EventRemoveGame      EventType = "remove_game"
	EventBalanceUpdate   EventType = "balance_update"
)

// Event is one decoded inbound envelope. The payload fields live beside the
// tag in the same JSON object, so the raw frame is kept until the tag is
// known and ParseEventPayload picks the matching payload struct.
type Event struct {
	Type EventType
	Data json.RawMessage
}

// InitialGameListPayload carries the wholesale lobby snapshot sent right
// after a connection is established.
type InitialGameListPayload struct {
	Games []lobby.Game `json:"games"`
}

// NewGamePayload announces a freshly created offer.
type NewGamePayload struct {
	Game lobby.Game `json:"game"`
}

// RemoveGamePayload announces that an offer was joined or cancelled.
type RemoveGamePayload struct {
	GameID string `json:"gameId"`
}

// BalanceUpdatePayload pushes the caller's current balance.
type BalanceUpdatePayload struct {
	Balance float64 `json:"balance"`
}

// DecodeEvent reads the tag of a raw text frame. The payload is parsed
// separately so an unknown tag can be skipped without touching its body.
func DecodeEvent(frame []byte) (*Event, error) {
	var head struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(frame, &head); err != nil {
		return nil, err
	}
	return &Event{Type: head.Type, Data: frame}, nil
}

// ParseEventPayload parses an event's body into the payload struct for its
// tag. An unrecognized tag returns (nil, nil) so callers can ignore frames
// from newer servers.
func ParseEventPayload(event *Event) (interface{}, error) {
	switch event.Type {
	case EventInitialGameList:
		var payload InitialGameListPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventNewGame:
		var payload NewGamePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventRemoveGame:
		var payload RemoveGamePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventBalanceUpdate:
		var payload BalanceUpdatePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	default:
		return nil, nil // unknown event type
	}
}
