package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/log"
)

// ErrMaxSteps is returned when the model keeps calling tools past the step limit.
var ErrMaxSteps = errors.New("max steps exceeded")

// DefaultMaxSteps bounds the reasoning loop when the caller gives no limit.
const DefaultMaxSteps = 20

const protocolTemplate = `%s

You have access to the following tools:

%s
Protocol:
1. To call a tool, output ONLY a JSON object in this format: {"tool": "toolName", "input": {...}}
2. Do not add any text before or after the JSON when calling a tool.
3. When you receive a Tool Result, use it to proceed.
4. If you have the final answer, output the text directly (no JSON).

Current Date: %s
User Query: %s`

// ToolCallResult stores the result of a tool call
type ToolCallResult struct {
	ToolName  string                 `json:"tool_name"`
	Input     map[string]interface{} `json:"input"`
	Output    interface{}            `json:"output,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Trace records one Run: every tool call in order and how many model turns it took.
type Trace struct {
	Query     string           `json:"query"`
	Steps     int              `json:"steps"`
	Calls     []ToolCallResult `json:"calls"`
	CreatedAt time.Time        `json:"created_at"`
}

// ToJSON exports the trace as indented JSON
func (t *Trace) ToJSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// RunInput is the input of the reasoning flow.
type RunInput struct {
	System string `json:"system"`
	Query  string `json:"query"`
}

// RunOutput is the output of the reasoning flow.
type RunOutput struct {
	Answer string `json:"answer"`
	Trace  *Trace `json:"trace"`
}

// FlowRunner defines the interface for running a flow
type FlowRunner interface {
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}

// Agent drives a plain-text LLM through the JSON tool protocol above until it
// produces a final answer. Each Run keeps its own transcript and trace, so one
// Agent serves concurrent requests.
type Agent struct {
	flow     FlowRunner
	registry *Registry
	llm      LLMClient
	maxSteps int
	now      func() time.Time
}

// NewAgent defines the reasoning flow on gk. maxSteps <= 0 uses DefaultMaxSteps.
func NewAgent(gk *genkit.Genkit, name string, registry *Registry, llm LLMClient, maxSteps int) *Agent {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	agent := &Agent{
		registry: registry,
		llm:      llm,
		maxSteps: maxSteps,
		now:      time.Now,
	}
	agent.flow = genkit.DefineFlow(gk, name, agent.run)
	return agent
}

// Run answers query under the given system instructions.
func (a *Agent) Run(ctx context.Context, system, query string) (string, *Trace, error) {
	out, err := a.flow.Run(ctx, RunInput{System: system, Query: query})
	return out.Answer, out.Trace, err
}

// describeTools renders each tool's name, description and input schema for the prompt.
func (a *Agent) describeTools() string {
	var sb strings.Builder
	for _, t := range a.registry.GetTools() {
		def := t.Definition()
		schemaBytes, _ := json.Marshal(def.InputSchema)
		fmt.Fprintf(&sb, "Tool: %s\nDescription: %s\nInput Schema: %s\n\n", def.Name, def.Description, string(schemaBytes))
	}
	return sb.String()
}

type toolCall struct {
	Tool  string                 `json:"tool"`
	Input map[string]interface{} `json:"input"`
}

// parseToolCall looks for a JSON object between the first '{' and the last '}'
// so code fences or a stray preamble do not hide a tool call.
func parseToolCall(resp string) (toolCall, bool) {
	var call toolCall
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")
	if start == -1 || end <= start {
		return call, false
	}
	if err := json.Unmarshal([]byte(resp[start:end+1]), &call); err != nil {
		return call, false
	}
	return call, call.Tool != ""
}

func (a *Agent) run(ctx context.Context, in RunInput) (RunOutput, error) {
	// The flow output is schema-checked, which rejects null arrays and maps.
	trace := &Trace{Query: in.Query, Calls: []ToolCallResult{}, CreatedAt: a.now()}
	out := RunOutput{Trace: trace}

	if a.llm == nil {
		return out, fmt.Errorf("llm client not configured")
	}

	history := fmt.Sprintf(protocolTemplate, strings.TrimSpace(in.System), a.describeTools(), a.now().Format(time.RFC3339), in.Query)

	for i := 0; i < a.maxSteps; i++ {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		trace.Steps = i + 1
		log.Debugf(ctx, "Step %d/%d: prompting LLM", i+1, a.maxSteps)

		resp, err := a.llm.GenerateContent(ctx, history)
		if err != nil {
			return out, fmt.Errorf("llm generation failed: %w", err)
		}

		call, ok := parseToolCall(resp)
		if !ok {
			log.Debugf(ctx, "Final answer after %d steps", i+1)
			out.Answer = strings.TrimSpace(resp)
			return out, nil
		}

		// The model must see its own request to make sense of the result that follows.
		history += fmt.Sprintf("\nModel Response: %s\n", resp)

		if call.Input == nil {
			call.Input = map[string]interface{}{}
		}
		log.Debugf(ctx, "Executing tool %s with input %v", call.Tool, call.Input)
		result := ToolCallResult{ToolName: call.Tool, Input: call.Input, Timestamp: a.now()}

		toolRes, toolErr := a.registry.ExecuteTool(ctx, call.Tool, call.Input)
		if toolErr != nil {
			log.Warnf(ctx, "Tool %s failed: %v", call.Tool, toolErr)
			result.Error = toolErr.Error()
			history += fmt.Sprintf("\nTool '%s' Error: %v\n", call.Tool, toolErr)
		} else {
			result.Output = toolRes
			history += fmt.Sprintf("\nTool '%s' Output: %v\n", call.Tool, toolRes)
		}
		trace.Calls = append(trace.Calls, result)
	}

	log.Warnf(ctx, "Max steps (%d) exceeded in reasoning loop", a.maxSteps)
	return out, ErrMaxSteps
}
