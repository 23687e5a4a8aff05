package nager

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/log"
	toolspkg "github.com/va6996/tripmate/tools"
)

type HolidayInput struct {
	Date string `json:"date" description:"Date to check in YYYY-MM-DD format"`
}

type HolidayOutput struct {
	IsHoliday bool   `json:"is_holiday"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
}

func (o *HolidayOutput) String() string {
	return o.Message
}

type HolidayTool struct {
	client *Client
}

func NewHolidayTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *HolidayTool {
	t := &HolidayTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*HolidayInput, *HolidayOutput](
		gk,
		"check_holiday",
		"Checks whether a date (YYYY-MM-DD) is a public holiday in New South Wales. Attractions may run reduced hours on holidays.",
		func(ctx *ai.ToolContext, input *HolidayInput) (*HolidayOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input := &HolidayInput{}
		if err := toolspkg.DecodeArgs(args, input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, input)
	})
	return t
}

func (t *HolidayTool) Execute(ctx context.Context, input *HolidayInput) (*HolidayOutput, error) {
	log.Debugf(ctx, "HolidayTool executing for %q", input.Date)

	if t.client == nil {
		return nil, fmt.Errorf("nager client not initialized")
	}

	day, err := catalog.ParseDate(input.Date)
	if err != nil {
		return &HolidayOutput{Message: fmt.Sprintf("❌ invalid date '%s'. Use YYYY-MM-DD", catalog.TrimInput(input.Date))}, nil
	}

	holiday, err := t.client.HolidayOn(ctx, day)
	if err != nil {
		log.Errorf(ctx, "HolidayTool failed: %v", err)
		return nil, err
	}
	if holiday == nil {
		return &HolidayOutput{Message: fmt.Sprintf("%s is not a public holiday in %s", day, t.client.Subdivision)}, nil
	}
	return &HolidayOutput{
		IsHoliday: true,
		Name:      holiday.Name,
		Message:   fmt.Sprintf("🎉 %s is a public holiday in %s: %s", day, t.client.Subdivision, holiday.Name),
	}, nil
}
