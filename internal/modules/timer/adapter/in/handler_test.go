package in_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timerin "studytracker/internal/modules/timer/adapter/in"
	timerdto "studytracker/internal/modules/timer/dto"
	timerport "studytracker/internal/modules/timer/port/in"
)

type lengthRecorder struct {
	timerport.Usecase
	study, brk []int
}

func (r *lengthRecorder) SetStudyMinutes(_ context.Context, minutes int) (timerdto.Snapshot, error) {
	r.study = append(r.study, minutes)
	return timerdto.Snapshot{}, nil
}

func (r *lengthRecorder) SetBreakMinutes(_ context.Context, minutes int) (timerdto.Snapshot, error) {
	r.brk = append(r.brk, minutes)
	return timerdto.Snapshot{}, nil
}

func TestTypedLengthsAreCoercedBeforeTheUsecase(t *testing.T) {
	rec := &lengthRecorder{}
	h := timerin.NewHandler(rec)
	ctx := context.Background()

	for _, text := range []string{" 45 ", "", "abc", "-3"} {
		_, err := h.SetStudyMinutesText(ctx, text)
		require.NoError(t, err)
		_, err = h.SetBreakMinutesText(ctx, text)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{45, 1, 1, 1}, rec.study)
	assert.Equal(t, []int{45, 1, 1, 1}, rec.brk)
}
