package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/tools"
)

// DateInput defines the input for the date tool
type DateInput struct {
	Expression string `json:"expression" description:"JavaScript expression to calculate a date. Variable 'now' is available as current timestamp in milliseconds."`
}

// DateOutput is a calendar day in the form the other tools accept.
type DateOutput struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// DateTool evaluates date arithmetic so models do not have to do it themselves.
type DateTool struct {
	Now      func() time.Time
	Location *time.Location
}

// NewDateTool creates a new DateTool and registers it
func NewDateTool(gk *genkit.Genkit, registry *tools.Registry) *DateTool {
	t := &DateTool{
		Now:      time.Now,
		Location: time.Local,
	}

	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DateInput, *DateOutput](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *DateInput) (*DateOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		expression, ok := args["expression"].(string)
		if !ok {
			return nil, fmt.Errorf("missing expression")
		}
		return t.Execute(ctx, &DateInput{Expression: expression})
	})

	return t
}

func (t *DateTool) Name() string {
	return "date_calc"
}

func (t *DateTool) Description() string {
	return `Executes a JavaScript expression to calculate a date and returns it as YYYY-MM-DD. Variable 'now' holds the current timestamp (milliseconds).
Return a Date object or ISO string. The last expression is the return value.
Examples:
- Tomorrow: "new Date(now + 86400000)"
- Next Saturday: "var d = new Date(now); d.setDate(d.getDate() + ((6 - d.getDay() + 7) % 7 || 7)); d"`
}

func (t *DateTool) Execute(ctx context.Context, input *DateInput) (*DateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input is required")
	}
	log.Debugf(ctx, "DateTool executing expression: %s", input.Expression)

	vm := goja.New()
	if err := vm.Set("now", t.Now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(input.Expression)
	if err != nil {
		log.Warnf(ctx, "DateTool expression failed: %v", err)
		return nil, fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	if exported == nil {
		return nil, fmt.Errorf("result is null or undefined")
	}

	var result time.Time
	switch v := exported.(type) {
	case time.Time:
		result = v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			result = parsed
		} else if day, err := catalog.ParseDate(v); err == nil {
			result = time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, t.location())
		} else {
			return nil, fmt.Errorf("result %q is not an ISO date", v)
		}
	default:
		return nil, fmt.Errorf("result is not a valid Date object or ISO string")
	}

	result = result.In(t.location())
	log.Debugf(ctx, "DateTool result: %s", result.Format(catalog.DateLayout))
	return &DateOutput{
		Date:    result.Format(catalog.DateLayout),
		Weekday: result.Weekday().String(),
	}, nil
}

func (t *DateTool) location() *time.Location {
	if t.Location == nil {
		return time.Local
	}
	return t.Location
}
