package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/schedule"
	"github.com/katalvlaran/submatch/schedule/library"
)

func TestLibrarySchedulesValidate(t *testing.T) {
	for name, s := range library.All() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, schedule.Validate(s, s.Size()))
		})
	}
}

func TestValidateRejectsOutOfRangeFather(t *testing.T) {
	s := schedule.NewStatic("bad", 2, 1)
	s.AddPrefix(0, 5, 0) // father out of range
	s.SetLoopSet(1, 0)
	err := schedule.Validate(s, 2)
	require.ErrorIs(t, err, schedule.ErrMalformed)
}

func TestValidateRejectsForwardReferencingRestriction(t *testing.T) {
	s := library.Path3()
	s.AddRestriction(1, 1) // references itself, not an ancestor
	err := schedule.Validate(s, 3)
	require.ErrorIs(t, err, schedule.ErrMalformed)
}

func TestValidateRejectsZeroRedundancy(t *testing.T) {
	s := library.Triangle().WithRedundancy(0)
	err := schedule.Validate(s, 3)
	require.ErrorIs(t, err, schedule.ErrMalformed)
}
