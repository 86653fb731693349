// Package twin provides the core types shared by the twin client: chat
// messages and the UI actions the backend attaches to its replies.
//
// A UI action arrives on the wire as a {type, payload} pair. DecodeAction
// turns that pair into one of the concrete Action variants so that callers
// switch on Go types instead of comparing strings:
//
//	action, err := twin.DecodeAction(raw)
//	switch a := action.(type) {
//	case *twin.HighlightTimeline:
//	case *twin.ShowProject:
//	case *twin.SkillFocus:
//	default: // *twin.UnknownAction
//	}
package twin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// Wire tags of the known UI actions.
const (
	TypeHighlightTimeline = "HIGHLIGHT_TIMELINE"
	TypeShowProject       = "SHOW_PROJECT"
	TypeSkillFocus        = "SKILL_FOCUS"
)

// ErrMalformedPayload is returned when a known action carries a payload that
// does not decode into its variant.
var ErrMalformedPayload = errors.New("malformed ui action payload")

// Action is a decoded UI action. The set of implementations is closed to this
// package; unrecognized tags decode to *UnknownAction.
type Action interface {
	// Type returns the wire tag of the action.
	Type() string
	isAction()
}

// RawAction is the wire form of a UI action.
type RawAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// HighlightTimeline asks the panel to highlight timeline entries whose id
// contains ID.
type HighlightTimeline struct {
	ID string `json:"id"`
}

// ShowProject asks the panel to show a project summary card.
// ID, Title, Description and TechStack are required by the backend contract.
type ShowProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Image       string   `json:"image,omitempty"`
}

// SkillFocus asks the panel to draw a skill radar. Skills and Scores are
// index-aligned; scores are percentages.
type SkillFocus struct {
	Skills []string  `json:"skills"`
	Scores []float64 `json:"scores"`
}

// UnknownAction keeps an action whose tag this client does not understand,
// or whose payload could not be decoded.
type UnknownAction struct {
	Tag     string
	Payload json.RawMessage
}

func (*HighlightTimeline) Type() string { return TypeHighlightTimeline }
func (*ShowProject) Type() string       { return TypeShowProject }
func (*SkillFocus) Type() string        { return TypeSkillFocus }
func (a *UnknownAction) Type() string   { return a.Tag }

func (*HighlightTimeline) isAction() {}
func (*ShowProject) isAction()       {}
func (*SkillFocus) isAction()        {}
func (*UnknownAction) isAction()     {}

// DecodeAction converts the wire form into a concrete Action.
// The returned action is never nil. When the payload of a known tag cannot be
// decoded, an *UnknownAction is returned together with an error wrapping
// ErrMalformedPayload.
func DecodeAction(raw RawAction) (Action, error) {
	var target Action
	switch raw.Type {
	case TypeHighlightTimeline:
		target = &HighlightTimeline{}
	case TypeShowProject:
		target = &ShowProject{}
	case TypeSkillFocus:
		target = &SkillFocus{}
	default:
		return &UnknownAction{Tag: raw.Type, Payload: raw.Payload}, nil
	}

	// A missing payload leaves the variant zero-valued
	if len(raw.Payload) == 0 || string(raw.Payload) == "null" {
		return target, nil
	}

	if err := sonic.Unmarshal(raw.Payload, target); err != nil {
		return &UnknownAction{Tag: raw.Type, Payload: raw.Payload},
			fmt.Errorf("%w: %s: %v", ErrMalformedPayload, raw.Type, err)
	}
	return target, nil
}

// EncodeAction converts an Action back into its wire form.
func EncodeAction(action Action) (RawAction, error) {
	if unknown, ok := action.(*UnknownAction); ok {
		return RawAction{Type: unknown.Tag, Payload: unknown.Payload}, nil
	}

	payload, err := sonic.Marshal(action)
	if err != nil {
		return RawAction{}, fmt.Errorf("encoding %s payload: %w", action.Type(), err)
	}
	return RawAction{Type: action.Type(), Payload: payload}, nil
}

// ParseAction decodes a JSON document of the form {"type": ..., "payload": ...}.
func ParseAction(data []byte) (Action, error) {
	var raw RawAction
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing ui action: %w", err)
	}
	if raw.Type == "" {
		return nil, fmt.Errorf("parsing ui action: missing type")
	}
	return DecodeAction(raw)
}
