package agents

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/log"
)

const qaInstructions = "You are a helpful assistant. Answer the user's questions briefly and clearly."

// QAAgent is a bare model call without tools.
type QAAgent struct {
	genkit *genkit.Genkit
	model  ai.Model
}

func NewQAAgent(gk *genkit.Genkit, model ai.Model) *QAAgent {
	return &QAAgent{genkit: gk, model: model}
}

func (a *QAAgent) Name() string {
	return "qa"
}

func (a *QAAgent) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	message, err := checkMessage(message)
	if err != nil {
		return "", err
	}
	if a.model == nil {
		return ErrorReply(fmt.Errorf("no model configured")), nil
	}

	log.Debugf(ctx, "QAAgent: answering with %d history turns", len(history))
	resp, err := genkit.Generate(ctx, a.genkit,
		ai.WithModel(a.model),
		ai.WithSystem(qaInstructions),
		ai.WithMessages(toMessages(history)...),
		ai.WithPrompt(message),
	)
	if err != nil {
		log.Errorf(ctx, "QAAgent: generate failed: %v", err)
		return ErrorReply(err), nil
	}
	return resp.Text(), nil
}
