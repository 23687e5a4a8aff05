package agents

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tmcontext "github.com/va6996/tripmate/context"
	"github.com/va6996/tripmate/log"
)

// DefaultMode is used when a request names no mode.
const DefaultMode = "functions"

// Router picks an assistant by mode name.
type Router struct {
	assistants map[string]Assistant
}

// NewRouter indexes assistants by Name. A later assistant with the same name wins.
func NewRouter(assistants ...Assistant) *Router {
	r := &Router{assistants: make(map[string]Assistant, len(assistants))}
	for _, a := range assistants {
		if a != nil {
			r.assistants[a.Name()] = a
		}
	}
	return r
}

// Get returns the assistant for mode; "" selects DefaultMode.
func (r *Router) Get(mode string) (Assistant, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = DefaultMode
	}
	a, ok := r.assistants[mode]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownMode, mode, strings.Join(r.Modes(), ", "))
	}
	return a, nil
}

// Modes lists registered mode names, sorted.
func (r *Router) Modes() []string {
	modes := make([]string, 0, len(r.assistants))
	for name := range r.assistants {
		modes = append(modes, name)
	}
	sort.Strings(modes)
	return modes
}

// Chat routes message to the assistant for mode.
func (r *Router) Chat(ctx context.Context, mode, message string, history []Turn) (string, error) {
	a, err := r.Get(mode)
	if err != nil {
		return "", err
	}
	ctx = tmcontext.WithAssistant(ctx, a.Name())
	log.Infof(ctx, "Routing chat message (%d history turns)", len(history))
	return a.Chat(ctx, message, history)
}
