package pkglog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	_, ok := CorrelationID(context.Background())
	assert.False(t, ok)

	_, ok = CorrelationID(WithCorrelationID(context.Background(), ""))
	assert.False(t, ok)

	cid, ok := CorrelationID(WithCorrelationID(context.Background(), "cid-123"))
	assert.True(t, ok)
	assert.Equal(t, "cid-123", cid)
}
