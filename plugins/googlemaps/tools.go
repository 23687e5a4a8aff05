package googlemaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/log"
	toolspkg "github.com/va6996/tripmate/tools"
)

type LocateInput struct {
	Attraction string `json:"attraction" description:"Attraction id or name, e.g. 'bondi_beach'"`
}

type LocateOutput struct {
	Place   *Place `json:"place,omitempty"`
	Message string `json:"message,omitempty"`
}

type LocateTool struct {
	client *Client
}

func NewLocateTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *LocateTool {
	t := &LocateTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*LocateInput, *LocateOutput](
		gk,
		"locate_attraction",
		"Returns the street address and map coordinates of a Sydney attraction.",
		func(ctx *ai.ToolContext, input *LocateInput) (*LocateOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input := &LocateInput{}
		if err := toolspkg.DecodeArgs(args, input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, input)
	})
	return t
}

func (t *LocateTool) Execute(ctx context.Context, input *LocateInput) (*LocateOutput, error) {
	log.Debugf(ctx, "LocateTool executing for %q", input.Attraction)

	if t.client == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}

	place, err := t.client.Locate(ctx, input.Attraction)
	if err != nil {
		var nf *core.NotFoundError
		if errors.As(err, &nf) {
			return &LocateOutput{Message: t.client.resolverFormatter().NotFound(nf)}, nil
		}
		log.Errorf(ctx, "LocateTool failed: %v", err)
		return nil, err
	}
	return &LocateOutput{Place: place}, nil
}
