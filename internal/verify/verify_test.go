package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suanpan/internal/verify"
)

func TestRunFindsNoCounterexamples(t *testing.T) {
	rep, err := verify.Run(context.Background(), verify.Options{MaxR: 6, MaxSize: 9})
	require.NoError(t, err)
	assert.True(t, rep.OK(), "failures: %v", rep.Failures)
	assert.Positive(t, rep.Actions)
	assert.Positive(t, rep.Checked)
}

func TestRunHonorsJobLimit(t *testing.T) {
	rep, err := verify.Run(context.Background(), verify.Options{MaxR: 4, MaxSize: 6, Jobs: 1})
	require.NoError(t, err)
	assert.True(t, rep.OK(), "failures: %v", rep.Failures)
}

func TestRunRejectsBadBounds(t *testing.T) {
	_, err := verify.Run(context.Background(), verify.Options{MaxR: 0, MaxSize: 5})
	require.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify.Run(ctx, verify.Options{MaxR: 12, MaxSize: 14})
	require.ErrorIs(t, err, context.Canceled)
}
