// Package lifecycle provides the conventional host-framework events built on
// top of the beacon primitive: a typed envelope for lifecycle transitions
// and an emitter that delivers them under a component's identity.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Event type labels for the conventional lifecycle phases.
const (
	Starting = "starting"
	Started  = "started"
	Stopping = "stopping"
	Stopped  = "stopped"
)

var eventJSON = []byte(`{"type":"lifecycle"}`)

// Event is the payload delivered for a lifecycle transition.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Phase     string          `json:"phase"`
	Sender    string          `json:"sender,omitempty"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
	Meta      gjson.Result    `json:"meta,omitempty"`
}

// WithMeta returns a copy of the event carrying v as structured metadata.
func (e Event) WithMeta(v any) (Event, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return e, fmt.Errorf("failed to marshal meta: %w", err)
	}
	e.Meta = gjson.ParseBytes(raw)
	return e, nil
}

// MarshalJSON implements custom JSON marshaling for Event
func (e Event) MarshalJSON() ([]byte, error) {
	result := eventJSON

	var err error
	result, err = sjson.SetBytes(result, "id", e.ID.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "phase", e.Phase)
	if err != nil {
		return nil, err
	}

	if e.Sender != "" {
		result, err = sjson.SetBytes(result, "sender", e.Sender)
		if err != nil {
			return nil, err
		}
	}

	if !e.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", e.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	if e.Meta.Exists() {
		result, err = sjson.SetRawBytes(result, "meta", []byte(e.Meta.Raw))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Event
func (e *Event) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	msgType := gjson.GetBytes(data, "type")
	if !msgType.Exists() || msgType.String() != "lifecycle" {
		return errors.New("missing or invalid type, expected 'lifecycle'")
	}

	id := gjson.GetBytes(data, "id")
	if !id.Exists() {
		return errors.New("missing required field 'id'")
	}
	if err := e.ID.UnmarshalText([]byte(id.String())); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}

	phase := gjson.GetBytes(data, "phase")
	if !phase.Exists() {
		return errors.New("missing required field 'phase'")
	}
	e.Phase = phase.String()

	if sender := gjson.GetBytes(data, "sender"); sender.Exists() {
		e.Sender = sender.String()
	}

	if timestamp := gjson.GetBytes(data, "timestamp"); timestamp.Exists() {
		if err := e.Timestamp.UnmarshalText([]byte(timestamp.String())); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	if meta := gjson.GetBytes(data, "meta"); meta.Exists() {
		e.Meta = meta
	}

	return nil
}
