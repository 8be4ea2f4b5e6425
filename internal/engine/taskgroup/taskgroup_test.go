package taskgroup_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/engine/taskgroup"
	"go.trai.ch/zerr"
)

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		inputs := []int{30, 10, 20}

		// Later inputs finish first.
		out, err := taskgroup.Run(context.Background(), 3, inputs, func(_ context.Context, _ int, d int) (int, error) {
			time.Sleep(time.Duration(d) * time.Millisecond)
			return d * 2, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{60, 20, 40}, out)
	})
}

func TestRun_RespectsLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var inFlight, peak atomic.Int32

		_, err := taskgroup.Run(context.Background(), 2, make([]struct{}, 6), func(_ context.Context, _ int, _ struct{}) (struct{}, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Second)
			inFlight.Add(-1)
			return struct{}{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, int32(2), peak.Load())
	})
}

func TestRun_FirstErrorCancelsSiblings(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		errBoom := zerr.New("boom")
		var finished atomic.Int32

		out, err := taskgroup.Run(context.Background(), 3, []int{0, 1, 2}, func(ctx context.Context, i int, _ int) (string, error) {
			if i == 1 {
				return "", errBoom
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Hour):
				finished.Add(1)
				return "finished", nil
			}
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errBoom))
		assert.Nil(t, out)
		assert.Zero(t, finished.Load())
	})
}

func TestRun_Empty(t *testing.T) {
	out, err := taskgroup.Run(context.Background(), 0, []string(nil), func(_ context.Context, _ int, s string) (string, error) {
		return s, nil
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_CanceledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := taskgroup.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, _ int, v int) (int, error) {
		calls.Add(1)
		return v, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}
