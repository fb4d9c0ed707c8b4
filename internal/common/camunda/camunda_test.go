// internal/common/camunda/camunda_test.go
package camunda

import (
	stderrors "errors"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
)

// ==========================
// Error Mapping
// ==========================

func TestMapZeebeError(t *testing.T) {
	tests := []struct {
		msg  string
		code errors.ErrorCode
	}{
		{"context deadline exceeded", errors.ErrCodeTimeout},
		{"rpc error: code = Unavailable", errors.ErrCodeExternalAPI},
		{"connection reset by peer", errors.ErrCodeExternalAPI},
		{"permission denied", errors.ErrCodeInternal},
		{"something odd", errors.ErrCodeExternalAPI},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			stdErr, ok := errors.AsStandardError(mapZeebeError(stderrors.New(tt.msg), "topology"))
			require.True(t, ok)
			assert.Equal(t, tt.code, stdErr.Code)
			if tt.code != errors.ErrCodeTimeout {
				assert.Equal(t, "topology", stdErr.Metadata["operation"])
			}
		})
	}
}

// ==========================
// Instrumentation
// ==========================

// stubJobClient hands out nil commands; the handlers under test only build them.
type stubJobClient struct {
	completes int
}

func (s *stubJobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	s.completes++
	return nil
}

func (s *stubJobClient) NewFailJobCommand() commands.FailJobCommandStep1 { return nil }

func (s *stubJobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 { return nil }

var _ worker.JobClient = (*stubJobClient)(nil)

func TestInstrument_RecordsOutcome(t *testing.T) {
	const taskType = "instrument-test"
	stub := &stubJobClient{}
	var seen string

	handler := Instrument(taskType, func(client worker.JobClient, job entities.Job) {
		client.NewCompleteJobCommand()
		seen = client.(*outcomeClient).outcome
	}, logger.NewTestLogger(t), nil)

	handler(stub, entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 1, Retries: 3}})

	assert.Equal(t, OutcomeCompleted, seen)
	assert.Equal(t, 1, stub.completes)
}

func TestOutcomeClient_TracksLastCommand(t *testing.T) {
	c := &outcomeClient{JobClient: &stubJobClient{}, outcome: OutcomeUnknown}

	c.NewFailJobCommand()
	assert.Equal(t, OutcomeFailed, c.outcome)

	c.NewThrowErrorCommand()
	assert.Equal(t, OutcomeThrown, c.outcome)
}
