package attractions

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/log"
	toolspkg "github.com/va6996/tripmate/tools"
)

// TextOutput is the shape shared by the attraction tools.
type TextOutput struct {
	Result string `json:"result"`
}

// --- Check Attraction Tool ---

type CheckAttractionInput struct {
	Attraction string `json:"attraction" description:"Attraction id or name, e.g. 'luna_park' or 'Opera House'"`
	Date       string `json:"date,omitempty" description:"Visit date in YYYY-MM-DD format (optional)"`
}

type CheckAttractionTool struct {
	client *Client
}

func NewCheckAttractionTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *CheckAttractionTool {
	t := &CheckAttractionTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*CheckAttractionInput, *TextOutput](
		gk,
		"check_attraction",
		"Checks whether a Sydney attraction is open, optionally on a date (YYYY-MM-DD). Returns price and location, or an alternative if it is closed that day.",
		func(ctx *ai.ToolContext, input *CheckAttractionInput) (*TextOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input := &CheckAttractionInput{}
		if err := toolspkg.DecodeArgs(args, input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, input)
	})
	return t
}

func (t *CheckAttractionTool) Execute(ctx context.Context, input *CheckAttractionInput) (*TextOutput, error) {
	log.Debugf(ctx, "CheckAttractionTool executing: attraction=%q date=%q", input.Attraction, input.Date)

	if t.client == nil {
		return nil, fmt.Errorf("attractions client not initialized")
	}

	text, err := t.client.Check(ctx, input.Attraction, input.Date)
	if err != nil {
		log.Errorf(ctx, "CheckAttractionTool failed: %v", err)
		return nil, err
	}
	return &TextOutput{Result: text}, nil
}

// --- List Attractions Tool ---

type ListAttractionsInput struct{}

type ListAttractionsTool struct {
	client *Client
}

func NewListAttractionsTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *ListAttractionsTool {
	t := &ListAttractionsTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*ListAttractionsInput, *TextOutput](
		gk,
		"list_attractions",
		"Lists every known Sydney attraction with its price, location and notes.",
		func(ctx *ai.ToolContext, input *ListAttractionsInput) (*TextOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return t.Execute(ctx, &ListAttractionsInput{})
	})
	return t
}

func (t *ListAttractionsTool) Execute(ctx context.Context, input *ListAttractionsInput) (*TextOutput, error) {
	log.Debugf(ctx, "ListAttractionsTool executing")

	if t.client == nil {
		return nil, fmt.Errorf("attractions client not initialized")
	}
	return &TextOutput{Result: t.client.List()}, nil
}

// --- Attraction Info Tool ---

type AttractionInfoInput struct {
	Attraction string `json:"attraction,omitempty" description:"Attraction id or name; leave empty to describe all attractions"`
}

type AttractionInfoTool struct {
	client *Client
}

func NewAttractionInfoTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *AttractionInfoTool {
	t := &AttractionInfoTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*AttractionInfoInput, *TextOutput](
		gk,
		"attraction_info",
		"Returns details (price, location, opening hours, notes) for one attraction, or for all attractions when none is named.",
		func(ctx *ai.ToolContext, input *AttractionInfoInput) (*TextOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input := &AttractionInfoInput{}
		if err := toolspkg.DecodeArgs(args, input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, input)
	})
	return t
}

func (t *AttractionInfoTool) Execute(ctx context.Context, input *AttractionInfoInput) (*TextOutput, error) {
	log.Debugf(ctx, "AttractionInfoTool executing: attraction=%q", input.Attraction)

	if t.client == nil {
		return nil, fmt.Errorf("attractions client not initialized")
	}

	text, err := t.client.Info(input.Attraction)
	if err != nil {
		return nil, err
	}
	return &TextOutput{Result: text}, nil
}

func (o *TextOutput) String() string {
	return o.Result
}
