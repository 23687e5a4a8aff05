package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/va6996/tripmate/log"
)

// ErrToolNotFound is returned when a model asks for a tool nobody registered.
var ErrToolNotFound = errors.New("tool not found")

// InvalidArgumentsError reports tool arguments that do not match the tool's input schema.
type InvalidArgumentsError struct {
	Tool string
	Err  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Err
}

// Observer is told about every executed tool call.
type Observer func(tool string, err error, dur time.Duration)

// Registry manages the registration of AI tools. Tools keep their
// registration order, which is also the order they are described to models.
// Registration happens at startup; lookups afterwards are read-only.
type Registry struct {
	tools     []ai.Tool
	executors map[string]ToolExecutor
	schemas   map[string]*jsonschema.Schema
	observer  Observer
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:     make([]ai.Tool, 0),
		executors: make(map[string]ToolExecutor),
		schemas:   make(map[string]*jsonschema.Schema),
	}
}

// Register adds a tool to the registry with its executor. The tool's input
// schema is compiled for argument validation; a schema that does not compile
// leaves the tool usable but unvalidated.
func (r *Registry) Register(tool ai.Tool, executor ToolExecutor) {
	def := tool.Definition()
	r.tools = append(r.tools, tool)
	r.executors[def.Name] = executor

	if len(def.InputSchema) == 0 {
		return
	}
	schema, err := compileSchema(def.Name, def.InputSchema)
	if err != nil {
		log.Warnf(context.Background(), "Tool %s: input schema not usable for validation: %v", def.Name, err)
		return
	}
	r.schemas[def.Name] = schema
}

// SetObserver installs fn to be called after each ExecuteTool. Call it before
// serving requests.
func (r *Registry) SetObserver(fn Observer) {
	r.observer = fn
}

// GetTools returns all registered tools
func (r *Registry) GetTools() []ai.Tool {
	return r.tools
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Definition().Name)
	}
	return names
}

// ExecuteTool validates args and runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (out interface{}, err error) {
	if r.observer != nil {
		start := time.Now()
		defer func() { r.observer(name, err, time.Since(start)) }()
	}

	executor, ok := r.executors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	if schema, ok := r.schemas[name]; ok {
		instance, err := normalizeJSON(args)
		if err != nil {
			return nil, &InvalidArgumentsError{Tool: name, Err: err}
		}
		if err := schema.Validate(instance); err != nil {
			return nil, &InvalidArgumentsError{Tool: name, Err: err}
		}
	}
	return executor(ctx, args)
}

func compileSchema(name string, schema map[string]any) (*jsonschema.Schema, error) {
	doc, err := normalizeJSON(schema)
	if err != nil {
		return nil, err
	}
	url := "tool://" + name + "/input.json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// normalizeJSON round-trips v through encoding/json so the validator only sees
// plain JSON values.
func normalizeJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
