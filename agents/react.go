package agents

import (
	"context"
	"fmt"

	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/tools"
)

// PlannerInstructions steer both tool-using assistants.
const PlannerInstructions = `You are a Sydney trip planner.
Instructions:
1. Use list_attractions to see all verified attractions.
2. Use check_attraction to check availability for specific dates.
3. Use get_weather to check weather.
4. Suggest alternatives if attractions are closed or if weather is bad.
5. Plan multi-day itineraries and avoid repeating the same attraction on consecutive days.
6. Provide prices, locations, and notes if available.
Use date_calc to turn relative dates such as "next Saturday" into YYYY-MM-DD before calling other tools.`

// Runner is the reasoning loop behind ReActAgent.
type Runner interface {
	Run(ctx context.Context, system, query string) (string, *tools.Trace, error)
}

// ReActAgent drives a plain-text model through the JSON tool protocol.
type ReActAgent struct {
	runner Runner
}

func NewReActAgent(runner Runner) *ReActAgent {
	return &ReActAgent{runner: runner}
}

func (a *ReActAgent) Name() string {
	return "react"
}

func (a *ReActAgent) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	message, err := checkMessage(message)
	if err != nil {
		return "", err
	}
	if a.runner == nil {
		return ErrorReply(fmt.Errorf("no reasoning loop configured")), nil
	}

	query := message
	if prior := transcript(history); prior != "" {
		query = fmt.Sprintf("Conversation so far:\n%s\nUser: %s", prior, message)
	}

	answer, trace, err := a.runner.Run(ctx, PlannerInstructions, query)
	if err != nil {
		log.Errorf(ctx, "ReActAgent: run failed: %v", err)
		return ErrorReply(err), nil
	}
	if trace != nil {
		log.Infof(ctx, "ReActAgent: answered in %d steps with %d tool calls", trace.Steps, len(trace.Calls))
	}
	return answer, nil
}
