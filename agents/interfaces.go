// Package agents implements the three chat assistants served by tripmate:
// a plain question/answer model, a text-protocol ReAct planner and a native
// function-calling planner.
package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
)

var (
	// ErrEmptyMessage is returned for a blank chat message, before any model call.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrUnknownMode is returned by the Router for a mode nobody registered.
	ErrUnknownMode = errors.New("unknown assistant mode")
)

// Role of a chat turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one earlier message of the conversation, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant answers one chat message given the earlier turns.
//
// Model and tool failures are returned as a "⚠️ Error: ..." reply with a nil
// error; only invalid input is an error.
type Assistant interface {
	Name() string
	Chat(ctx context.Context, message string, history []Turn) (string, error)
}

// ErrorReply renders err as a user-facing reply.
func ErrorReply(err error) string {
	return fmt.Sprintf("⚠️ Error: %s", err.Error())
}

func checkMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	return message, nil
}

// toMessages converts history into genkit messages. Unknown roles are treated as user turns.
func toMessages(history []Turn) []*ai.Message {
	msgs := make([]*ai.Message, 0, len(history))
	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		if turn.Role == RoleAssistant {
			msgs = append(msgs, ai.NewModelTextMessage(turn.Content))
		} else {
			msgs = append(msgs, ai.NewUserTextMessage(turn.Content))
		}
	}
	return msgs
}

// transcript renders history as plain text for models without a chat API.
func transcript(history []Turn) string {
	var sb strings.Builder
	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		role := "User"
		if turn.Role == RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, turn.Content)
	}
	return sb.String()
}
