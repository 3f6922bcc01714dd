// Package router translates inbound protocol events into canonical list
// mutations and side-channel signals.
package router

import (
	"github.com/rs/zerolog/log"

	"github.com/ludopark/lobbyclient/internal/lobby"
	"github.com/ludopark/lobbyclient/internal/protocol"
)

// Router consumes raw frames one at a time, in arrival order, and applies
// their effect. Decoding failures are logged and dropped without touching
// any state; unknown tags are ignored for forward compatibility.
type Router struct {
	store     *lobby.Store
	onBalance func(balance float64)
}

// New builds a router mutating the given store. onBalance receives
// balance_update pushes and may be nil.
func New(store *lobby.Store, onBalance func(float64)) *Router {
	return &Router{store: store, onBalance: onBalance}
}

// HandleFrame processes one raw inbound frame.
func (r *Router) HandleFrame(frame []byte) {
	event, err := protocol.DecodeEvent(frame)
	if err != nil {
		log.Warn().Err(err).Msg("discarding malformed frame")
		return
	}

	payload, err := protocol.ParseEventPayload(event)
	if err != nil {
		log.Warn().Err(err).Str("event_type", string(event.Type)).Msg("discarding frame with malformed payload")
		return
	}

	switch p := payload.(type) {
	case protocol.InitialGameListPayload:
		r.store.ReplaceAll(p.Games)

	case protocol.NewGamePayload:
		r.store.Upsert(p.Game)

	case protocol.RemoveGamePayload:
		r.store.Remove(p.GameID)

	case protocol.BalanceUpdatePayload:
		log.Debug().Float64("balance", p.Balance).Msg("balance updated")
		if r.onBalance != nil {
			r.onBalance(p.Balance)
		}

	default:
		log.Debug().Str("event_type", string(event.Type)).Msg("ignoring unknown event type")
	}
}
