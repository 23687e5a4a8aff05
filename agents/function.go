package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/tools"
)

// DefaultMaxTurns bounds the tool round-trips of one function-calling chat.
const DefaultMaxTurns = 15

// FunctionAgent uses the model's native function calling over the registry tools.
type FunctionAgent struct {
	genkit   *genkit.Genkit
	registry *tools.Registry
	model    ai.Model
	maxTurns int
	now      func() time.Time
}

func NewFunctionAgent(gk *genkit.Genkit, registry *tools.Registry, model ai.Model, maxTurns int) *FunctionAgent {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &FunctionAgent{
		genkit:   gk,
		registry: registry,
		model:    model,
		maxTurns: maxTurns,
		now:      time.Now,
	}
}

func (a *FunctionAgent) Name() string {
	return "functions"
}

func (a *FunctionAgent) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	message, err := checkMessage(message)
	if err != nil {
		return "", err
	}
	if a.model == nil {
		return ErrorReply(fmt.Errorf("no model configured")), nil
	}

	var toolRefs []ai.ToolRef
	if a.registry != nil {
		for _, tool := range a.registry.GetTools() {
			toolRefs = append(toolRefs, tool)
		}
	}
	log.Debugf(ctx, "FunctionAgent: %d tools available", len(toolRefs))

	system := fmt.Sprintf("Today is %s.\n%s\nAnswer briefly and use tools to get accurate information.",
		a.now().Format(catalog.DateLayout), PlannerInstructions)

	resp, err := genkit.Generate(ctx, a.genkit,
		ai.WithModel(a.model),
		ai.WithSystem(system),
		ai.WithMessages(toMessages(history)...),
		ai.WithPrompt(message),
		ai.WithTools(toolRefs...),
		ai.WithMaxTurns(a.maxTurns),
	)
	if err != nil {
		log.Errorf(ctx, "FunctionAgent: generate failed: %v", err)
		return ErrorReply(err), nil
	}

	log.Debugf(ctx, "FunctionAgent: finish reason %v", resp.FinishReason)
	return resp.Text(), nil
}
