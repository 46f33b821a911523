package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
)

func TestCanAssign(t *testing.T) {
	assert.NoError(t, CanAssign(StatusPending))

	for _, s := range []Status{StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled} {
		err := CanAssign(s)
		assert.Error(t, err, "status %s", s)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	}
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusAssigned))

	for _, s := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		err := CanComplete(s)
		assert.Error(t, err, "status %s", s)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusAssigned))

	for _, s := range []Status{StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.Error(t, CanCancel(s), "status %s", s)
	}
}

func TestCanRefuse(t *testing.T) {
	assert.NoError(t, CanRefuse(StatusAssigned))

	for _, s := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.Error(t, CanRefuse(s), "status %s", s)
	}
}

func TestCanDelete(t *testing.T) {
	// concluída é a única intocável
	err := CanDelete(StatusCompleted)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	for _, s := range []Status{StatusPending, StatusAssigned, StatusInProgress, StatusCancelled} {
		assert.NoError(t, CanDelete(s), "status %s", s)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusAssigned, InitialStatus(true))
	assert.Equal(t, StatusPending, InitialStatus(false))
}

func TestLabelsCoverAllStatuses(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.NotEmpty(t, Labels[s], "status %s", s)
		assert.NotEmpty(t, Colors[s], "status %s", s)
	}
}
