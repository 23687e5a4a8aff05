package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// LLMClient is a plain text-completion model, as used by the text tool protocol.
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ToolExecutor is the function signature for executing a tool
type ToolExecutor func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// DecodeArgs copies loosely typed tool arguments into a typed input struct.
func DecodeArgs(args map[string]interface{}, out interface{}) error {
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal args: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to unmarshal args: %w", err)
	}
	return nil
}
