// Package conversation drives a chat with the twin backend.
//
// The Controller owns the ordered message log, the backend-assigned session
// id and the live UI action. It issues at most one request at a time; a
// submission made while a turn is in flight is dropped.
package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/longkey1/twin/internal/observability"
	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/client"
)

// ErrorReply is appended as the assistant message when a turn fails.
const ErrorReply = "Sorry, I encountered an error. Please try again."

var (
	ErrBlankInput = errors.New("message is blank")
	ErrBusy       = errors.New("a message is already being sent")
)

// Sender performs one chat exchange with the backend.
type Sender interface {
	Send(ctx context.Context, req client.ChatRequest) (*client.ChatResponse, error)
}

// Turn is the outcome of one accepted submission.
type Turn struct {
	User   twin.Message
	Reply  twin.Message
	Action twin.Action // action received with this reply, nil if none
	Err    error       // transport failure; Reply then holds ErrorReply
}

// Failed reports whether the turn ended with the error reply.
func (t *Turn) Failed() bool {
	return t.Err != nil
}

// Controller holds the state of one conversation.
type Controller struct {
	sender Sender
	gate   gate

	mu        sync.RWMutex
	messages  []twin.Message
	sessionID string
	action    twin.Action
}

// NewController creates a controller sending through sender.
func NewController(sender Sender) *Controller {
	return &Controller{
		sender:   sender,
		messages: []twin.Message{},
	}
}

// Submit sends text as the next user turn.
//
// Blank text returns ErrBlankInput and a submission during an in-flight turn
// returns ErrBusy; neither touches the log. Transport failures do not return
// an error: they are logged and recorded in the returned Turn, whose Reply is
// the fixed ErrorReply already appended to the log.
//
// Once issued a request runs to completion: cancelling ctx does not abort it,
// and ctx only contributes its values (logger fields) to the request.
func (c *Controller) Submit(ctx context.Context, text string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankInput
	}
	if !c.gate.acquire() {
		return nil, ErrBusy
	}
	defer c.gate.release()

	turn := &Turn{User: twin.NewMessage(twin.RoleUser, text)}

	c.mu.Lock()
	c.messages = append(c.messages, turn.User)
	sessionID := c.sessionID
	c.mu.Unlock()

	ctx = observability.WithSessionID(ctx, sessionID)
	log := observability.LoggerFromContext(ctx)

	resp, err := c.sender.Send(context.WithoutCancel(ctx), client.ChatRequest{Message: text, SessionID: sessionID})
	if err != nil {
		log.Error("chat request failed", "error", err)
		turn.Err = err
		turn.Reply = twin.NewMessage(twin.RoleAssistant, ErrorReply)
		c.append(turn.Reply)
		return turn, nil
	}

	if resp.UIAction != nil {
		action, err := twin.DecodeAction(*resp.UIAction)
		if err != nil {
			log.Warn("ui action payload rejected", "type", resp.UIAction.Type, "error", err)
		}
		log.Debug("received ui action", "type", action.Type())
		turn.Action = action
	}
	turn.Reply = twin.NewMessage(twin.RoleAssistant, resp.Response)

	c.mu.Lock()
	if c.sessionID == "" && resp.SessionID != "" {
		c.sessionID = resp.SessionID
	}
	if turn.Action != nil {
		c.action = turn.Action
	}
	c.messages = append(c.messages, turn.Reply)
	c.mu.Unlock()

	return turn, nil
}

func (c *Controller) append(msg twin.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
}

// Messages returns a copy of the log in display order.
func (c *Controller) Messages() []twin.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	messages := make([]twin.Message, len(c.messages))
	copy(messages, c.messages)
	return messages
}

// MessageCount returns the number of messages in the log.
func (c *Controller) MessageCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// SessionID returns the backend session id, empty before the first reply.
func (c *Controller) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// Action returns the live UI action, nil if none has been received.
func (c *Controller) Action() twin.Action {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.action
}

// Busy reports whether a turn is in flight.
func (c *Controller) Busy() bool {
	return c.gate.busy()
}
