package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/telemetry/progrock"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRecorder_ReportsPhases(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	var phases []string
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).Do(func(msg string, args ...any) {
		phases = append(phases, msg+" "+args[1].(string))
	}).Times(2)

	recorder := progrock.New(log)

	ctx := context.Background()
	got, vertex := recorder.Record(ctx, domain.PhaseScan)
	assert.Equal(t, ctx, got)

	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Log(domain.LogLevelWarn, "warn msg")
	vertex.Complete(nil)

	_, failed := recorder.Record(ctx, domain.PhaseMaterialize)
	failed.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())
	assert.Equal(t, []string{
		"phase done " + domain.PhaseScan,
		"phase failed " + domain.PhaseMaterialize,
	}, phases)
}
