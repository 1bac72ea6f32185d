package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)

	routed := LookupCost("google/gemini-2.5-flash")
	require.NotNil(t, routed)
	assert.Equal(t, *c, *routed)

	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost("acme/unknown-model"))
}
