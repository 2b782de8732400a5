package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrPayloadMismatch is returned when an event's payload does not fit its type
// or was written under another major schema version.
var ErrPayloadMismatch = errors.New("event payload mismatch")

// TreePayload returns the payload of a tree.planted or tree.updated event
func (e Event) TreePayload() (TreePayloadV1, error) {
	return payloadAs[TreePayloadV1](e, TreePlanted, TreeUpdated)
}

// TreeRemovedPayload returns the payload of a tree.removed event
func (e Event) TreeRemovedPayload() (TreeRemovedPayloadV1, error) {
	return payloadAs[TreeRemovedPayloadV1](e, TreeRemoved)
}

// DonationPayload returns the payload of a donation.created event
func (e Event) DonationPayload() (DonationCreatedPayloadV1, error) {
	return payloadAs[DonationCreatedPayloadV1](e, DonationCreated)
}

// payloadAs accepts the struct published in-process, a pointer to it, raw
// JSON, or the generic map left by a JSON round trip.
func payloadAs[T any](e Event, types ...Type) (T, error) {
	var zero T
	if !slices.Contains(types, e.Type) {
		return zero, fmt.Errorf("%w: %s does not carry %T", ErrPayloadMismatch, e.Type, zero)
	}
	if !sameMajor(e.Version, EventSchemaVersion) {
		return zero, fmt.Errorf("%w: %s has schema version %q, want %s", ErrPayloadMismatch, e.Type, e.Version, EventSchemaVersion)
	}

	var data []byte
	switch v := e.Payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return zero, fmt.Errorf("%w: %s has no payload", ErrPayloadMismatch, e.Type)
	case nil:
		return zero, fmt.Errorf("%w: %s has no payload", ErrPayloadMismatch, e.Type)
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		var err error
		if data, err = json.Marshal(v); err != nil {
			return zero, fmt.Errorf("%w: %s: %v", ErrPayloadMismatch, e.Type, err)
		}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrPayloadMismatch, e.Type, err)
	}
	return out, nil
}

func sameMajor(a, b string) bool {
	ma, _, _ := strings.Cut(a, ".")
	mb, _, _ := strings.Cut(b, ".")
	return ma != "" && ma == mb
}
