// Package openaicompat is a genkit plugin for any OpenAI-compatible chat API
// (OpenAI itself, z.ai, vLLM, LM Studio).
package openaicompat

import (
	"context"
	"os"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go/option"
)

const (
	provider       = "oaicompat"
	defaultBaseURL = "https://api.openai.com/v1/"
)

// OpenAICompatible registers chat models served by an OpenAI-compatible endpoint.
type OpenAICompatible struct {
	// APIKey falls back to the OPENAI_API_KEY environment variable.
	APIKey string
	// BaseURL defaults to https://api.openai.com/v1/
	BaseURL string
	// Models are defined at Init in addition to the built-in defaults.
	Models []string

	openAICompatible *compat_oai.OpenAICompatible
}

// Name implements genkit.Plugin.
func (o *OpenAICompatible) Name() string {
	return provider
}

// Init implements genkit.Plugin.
func (o *OpenAICompatible) Init(ctx context.Context) []api.Action {
	apiKey := o.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		panic("openaicompat plugin initialization failed: apiKey is required (set OPENAI_API_KEY or pass APIKey)")
	}

	baseURL := o.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if o.openAICompatible == nil {
		o.openAICompatible = &compat_oai.OpenAICompatible{}
	}
	o.openAICompatible.Opts = []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	o.openAICompatible.Provider = provider

	actions := o.openAICompatible.Init(ctx)

	models := map[string]ai.ModelOptions{
		"gpt-4o-mini": {
			Label:    "OpenAI GPT-4o mini",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"gpt-4o-mini"},
		},
		"gpt-4o": {
			Label:    "OpenAI GPT-4o",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"gpt-4o"},
		},
	}
	for _, id := range o.Models {
		if _, ok := models[id]; !ok {
			models[id] = ai.ModelOptions{Label: "OpenAI-compatible " + id, Supports: &compat_oai.Multimodal}
		}
	}

	for id, opts := range models {
		actions = append(actions, o.openAICompatible.DefineModel(provider, id, opts).(api.Action))
	}
	return actions
}

// Model returns a model by name.
func (o *OpenAICompatible) Model(g *genkit.Genkit, name string) ai.Model {
	return o.openAICompatible.Model(g, api.NewName(provider, name))
}

// ListActions returns a list of actions provided by this plugin.
func (o *OpenAICompatible) ListActions(ctx context.Context) []api.ActionDesc {
	return o.openAICompatible.ListActions(ctx)
}

// ResolveAction resolves an action by type and name.
func (o *OpenAICompatible) ResolveAction(atype api.ActionType, name string) api.Action {
	return o.openAICompatible.ResolveAction(atype, name)
}
