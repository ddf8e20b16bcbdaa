package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesKind(t *testing.T) {
	err := New(PreconditionFailed, ReasonStationOccupied, "station s1")

	assert.True(t, errors.Is(err, PreconditionFailed))
	assert.False(t, errors.Is(err, InvalidTransition))
	assert.Equal(t, "precondition failed: station_occupied: station s1", err.Error())
}

func TestErrorMatchesWrappedKinds(t *testing.T) {
	contention := New(PersistenceContention, ReasonDatabaseBusy, "")
	err := fmt.Errorf("start session: %w", Wrap(PersistenceFailure, ReasonDatabaseBusy, contention))

	assert.True(t, errors.Is(err, PersistenceFailure))
	assert.True(t, errors.Is(err, PersistenceContention))
	assert.Equal(t, PersistenceFailure, KindOf(err))
	assert.Equal(t, ReasonDatabaseBusy, ReasonOf(err))
}

func TestReasonOfFallsThroughEmptyReason(t *testing.T) {
	inner := New(NotFound, ReasonSessionNotFound, "")
	outer := Wrap(PersistenceFailure, "", inner)

	assert.Equal(t, ReasonSessionNotFound, ReasonOf(outer))
	assert.Equal(t, Reason(""), ReasonOf(errors.New("plain")))
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(New(AlreadyTerminated, ReasonSessionCompleted, "")))
	assert.True(t, IsFatal(New(InvalidTransition, ReasonSessionNotActive, "")))
	assert.True(t, IsFatal(errors.New("boom")))
}
