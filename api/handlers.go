package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/events"
)

// Event type names accepted by POST /v1/events
const (
	EventTypeStart     = "start"
	EventTypePause     = "pause"
	EventTypeRestart   = "restart"
	EventTypeToggle    = "toggle"
	EventTypeDirection = "direction"
	EventTypeTick      = "tick"
)

// EventRequest is the body of POST /v1/events
type EventRequest struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

var errUnknownEventType = errors.New("unknown event type")

type handlers struct {
	ctrl      Controller
	logger    zerolog.Logger
	keepalive time.Duration
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) snapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

func (h *handlers) postEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if req.Type == EventTypeToggle {
		h.ctrl.Toggle()
		writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
		return
	}

	ev, err := req.event()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_event", err.Error())
		return
	}

	h.ctrl.Dispatch(ev)
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// event maps the request onto a controller event
func (req EventRequest) event() (events.GameEvent, error) {
	switch req.Type {
	case EventTypeStart:
		return events.Start(), nil
	case EventTypePause:
		return events.Pause(), nil
	case EventTypeRestart:
		return events.Restart(), nil
	case EventTypeTick:
		return events.Tick(), nil
	case EventTypeDirection:
		dir, err := core.ParseDirection(req.Direction)
		if err != nil {
			return events.GameEvent{}, err
		}
		return events.DirectionChanged(dir), nil
	default:
		return events.GameEvent{}, fmt.Errorf("%w: %q", errUnknownEventType, req.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, ErrorResponse{Error: code, Detail: detail})
}
