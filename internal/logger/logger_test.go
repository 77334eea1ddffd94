package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Must not panic even though all output is discarded.
	l.Info().Str("k", "v").Msg("ignored")
	l.Err(assert.AnError).Send()
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	nop := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)
}
