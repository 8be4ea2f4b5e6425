package app_test

import (
	"errors"
	"testing"

	"go.trai.ch/symup/internal/app"
	"go.trai.ch/symup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestComponents_Close(t *testing.T) {
	t.Run("Flushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tel := mocks.NewMockTelemetry(ctrl)
		tel.EXPECT().Close().Return(nil)

		c := &app.Components{Logger: mocks.NewMockLogger(ctrl), Telemetry: tel}
		c.Close()
	})

	t.Run("FailureIsLogged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tel := mocks.NewMockTelemetry(ctrl)
		log := mocks.NewMockLogger(ctrl)
		tel.EXPECT().Close().Return(errors.New("disk full"))
		log.EXPECT().Warn("failed to flush progress: disk full")

		c := &app.Components{Logger: log, Telemetry: tel}
		c.Close()
	})

	t.Run("NoTelemetry", func(_ *testing.T) {
		c := &app.Components{}
		c.Close()
	})
}
