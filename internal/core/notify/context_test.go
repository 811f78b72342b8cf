package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustFromContext_returns_store(t *testing.T) {
	s := NewStore()
	ctx := WithStore(context.Background(), s)

	assert.Same(t, s, MustFromContext(ctx))
}

func TestMustFromContext_panics_outside_scope(t *testing.T) {
	assert.Panics(t, func() {
		MustFromContext(context.Background())
	})
}

func TestMustFromContext_panics_on_nil_store(t *testing.T) {
	ctx := WithStore(context.Background(), nil)

	assert.Panics(t, func() {
		MustFromContext(ctx)
	})
}
