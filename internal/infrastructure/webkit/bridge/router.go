// Package bridge routes messages posted by page scripts to Go handlers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumb-messenger/internal/logging"
)

// HandlerName is the script message handler registered in the page:
// window.webkit.messageHandlers.dumbMessenger.
const HandlerName = "dumbMessenger"

// Message is the envelope posted by page scripts.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler handles the payload of one message type.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Handle calls f(ctx, payload).
func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) error {
	return f(ctx, payload)
}

// Router dispatches decoded messages by type. Messages are fire-and-forget:
// handler errors are logged and never reported back to the page.
type Router struct {
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter creates a router whose handlers run with ctx.
func NewRouter(ctx context.Context) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{baseCtx: ctx, handlers: make(map[string]Handler)}
}

// Register adds the handler for msgType, replacing any previous one.
func (r *Router) Register(msgType string, h Handler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if h == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = h
	return nil
}

// Dispatch decodes rawJSON and runs the matching handler. It reports
// whether a handler ran successfully.
func (r *Router) Dispatch(rawJSON string) bool {
	log := logging.FromContext(r.baseCtx).With().Str("component", "message-router").Logger()

	msg, err := Decode(rawJSON)
	if err != nil {
		log.Warn().Err(err).Msg("dropping script message")
		return false
	}

	r.mu.RLock()
	h, ok := r.handlers[msg.Type]
	r.mu.RUnlock()
	if !ok {
		log.Debug().Str("type", msg.Type).Msg("no handler registered for message type")
		return false
	}

	if err := h.Handle(r.baseCtx, msg.Payload); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		return false
	}
	return true
}

// Decode parses an envelope. Scripts may post either an object or its
// JSON.stringify form.
func Decode(rawJSON string) (Message, error) {
	var msg Message
	if rawJSON == "" {
		return msg, errors.New("empty message")
	}

	data := []byte(rawJSON)
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return msg, fmt.Errorf("decode string message: %w", err)
		}
		data = []byte(inner)
	}

	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("decode message: %w", err)
	}
	if msg.Type == "" {
		return msg, errors.New("message missing type")
	}
	return msg, nil
}

// TitlePayload is sent by the observer script when the title changes.
type TitlePayload struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// TitleHandler adapts fn to a Handler for "title" messages.
func TitleHandler(fn func(ctx context.Context, p TitlePayload)) Handler {
	return HandlerFunc(func(ctx context.Context, raw json.RawMessage) error {
		var p TitlePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode title payload: %w", err)
		}
		fn(ctx, p)
		return nil
	})
}
