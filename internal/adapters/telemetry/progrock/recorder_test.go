package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/adapters/logger"
	"go.trai.ch/symup/internal/adapters/telemetry/progrock"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

func newVerboseLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetVerbose(true)
	return lg, buf
}

func TestRecorder_Record(t *testing.T) {
	lg, buf := newVerboseLogger(t)
	recorder := progrock.New(lg)

	ctx, vertex := recorder.Record(context.Background(), "package App.dSYM")
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("UUID: ABC (arm64) App\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelWarn, "skipped: no UUID")
	vertex.Complete(nil)

	_, failed := recorder.Record(context.Background(), "upload")
	failed.Complete(zerr.New("upload failed"))

	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, "package App.dSYM: UUID: ABC (arm64) App\n")
	assert.Contains(t, out, "package App.dSYM: [WARN] skipped: no UUID\n")
	assert.Contains(t, out, "package App.dSYM: done\n")
	assert.Contains(t, out, "upload: failed: upload failed\n")
}

func TestRecorder_PartialLines(t *testing.T) {
	lg, buf := newVerboseLogger(t)
	recorder := progrock.New(lg)

	_, vertex := recorder.Record(context.Background(), "package Lib.dSYM")
	_, err := vertex.Stdout().Write([]byte("UUID: AB"))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "UUID")

	_, err = vertex.Stdout().Write([]byte("CD (x86_64) Lib\ntrailing"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "package Lib.dSYM: UUID: ABCD (x86_64) Lib\n")
	assert.NotContains(t, buf.String(), "trailing")

	require.NoError(t, recorder.Close())
	assert.Contains(t, buf.String(), "package Lib.dSYM: trailing\n")
}

func TestRecorder_QuietWithoutVerbose(t *testing.T) {
	lg, buf := newVerboseLogger(t)
	lg.SetVerbose(false)
	recorder := progrock.New(lg)

	_, vertex := recorder.Record(context.Background(), "upload")
	_, err := vertex.Stdout().Write([]byte("sent 42 bytes\n"))
	require.NoError(t, err)
	vertex.Complete(nil)
	require.NoError(t, recorder.Close())

	assert.Empty(t, buf.String())
}
