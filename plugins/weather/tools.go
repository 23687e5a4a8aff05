package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/log"
	toolspkg "github.com/va6996/tripmate/tools"
)

type WeatherInput struct {
	Date string `json:"date" description:"Date to forecast in YYYY-MM-DD format"`
}

type WeatherOutput struct {
	Forecast string  `json:"forecast"`
	Season   string  `json:"season,omitempty"`
	Celsius  float64 `json:"celsius,omitempty"`
}

type WeatherTool struct {
	client *Client
}

func NewWeatherTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *WeatherTool {
	t := &WeatherTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*WeatherInput, *WeatherOutput](
		gk,
		"get_weather",
		"Returns a mock weather forecast for Sydney on a date (YYYY-MM-DD): temperature in Celsius and conditions.",
		func(ctx *ai.ToolContext, input *WeatherInput) (*WeatherOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input := &WeatherInput{}
		if err := toolspkg.DecodeArgs(args, input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, input)
	})
	return t
}

// Execute reports a bad date as forecast text so the model can ask again.
func (t *WeatherTool) Execute(ctx context.Context, input *WeatherInput) (*WeatherOutput, error) {
	log.Debugf(ctx, "WeatherTool executing for %q", input.Date)

	if t.client == nil {
		return nil, fmt.Errorf("weather client not initialized")
	}

	report, err := t.client.For(input.Date)
	if err != nil {
		var invalid *InvalidDateError
		if errors.As(err, &invalid) {
			return &WeatherOutput{Forecast: "❌ " + invalid.Error()}, nil
		}
		return nil, err
	}

	return &WeatherOutput{
		Forecast: report.String(),
		Season:   report.Season,
		Celsius:  report.Celsius,
	}, nil
}

func (o *WeatherOutput) String() string {
	return o.Forecast
}
