package schedule_test

import (
	"testing"
	"time"

	"github.com/fjtyk95/work-schedule/internal/schedule"
	scheduleerrors "github.com/fjtyk95/work-schedule/internal/schedule/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkType(t *testing.T) {
	t.Run("round trips every valid combination", func(t *testing.T) {
		cases := []struct {
			base schedule.BaseWorkType
			half schedule.HalfDayWorkType
		}{
			{schedule.WorkOnSite, ""},
			{schedule.WorkRemote, ""},
			{schedule.WorkFullLeave, ""},
			{schedule.WorkAMLeave, schedule.HalfOnSite},
			{schedule.WorkAMLeave, schedule.HalfRemote},
			{schedule.WorkPMLeave, schedule.HalfOnSite},
			{schedule.WorkPMLeave, schedule.HalfRemote},
		}

		for _, tc := range cases {
			wt, err := schedule.NewWorkType(tc.base, tc.half)
			assert.NoError(t, err)

			base, half := wt.Parts()
			assert.Equal(t, tc.base, base)
			assert.Equal(t, tc.half, half)
		}
	})

	t.Run("rejects a sub-type on a non-compound base", func(t *testing.T) {
		for _, base := range []schedule.BaseWorkType{
			schedule.WorkOnSite,
			schedule.WorkRemote,
			schedule.WorkFullLeave,
		} {
			_, err := schedule.NewWorkType(base, schedule.HalfRemote)
			assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkType)
		}
	})

	t.Run("rejects a compound base without a sub-type", func(t *testing.T) {
		_, err := schedule.NewWorkType(schedule.WorkAMLeave, "")
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkType)

		_, err = schedule.NewWorkType(schedule.WorkPMLeave, "")
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkType)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := schedule.NewWorkType("NAP", "")
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkType)

		_, err = schedule.NewWorkType(schedule.WorkAMLeave, "NAP")
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWorkType)
	})
}

func TestSchedule_Contains(t *testing.T) {
	s := schedule.Schedule{
		StartDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, s.Contains(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Contains(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)))
}
