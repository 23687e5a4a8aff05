package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	id := NewRequestID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, NewRequestID())

	ctx := WithRequestID(stdctx.Background(), id)
	assert.Equal(t, id, RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(stdctx.Background()))
	assert.Equal(t, "", RequestIDFromContext(nil)) //nolint:staticcheck
}

func TestAssistant(t *testing.T) {
	ctx := WithAssistant(stdctx.Background(), "react")
	assert.Equal(t, "react", AssistantFromContext(ctx))
	assert.Equal(t, "", AssistantFromContext(stdctx.Background()))
}
