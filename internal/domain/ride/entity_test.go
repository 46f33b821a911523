package ride

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

func pendingRide() *models.Ride {
	return &models.Ride{
		ID:            "r1",
		Status:        string(StatusPending),
		ScheduledTime: time.Date(2024, 7, 15, 14, 30, 0, 0, time.UTC),
	}
}

func assignedRide(driverID string) *models.Ride {
	r := pendingRide()
	r.Status = string(StatusAssigned)
	r.DriverID = &driverID
	return r
}

func TestAssign(t *testing.T) {
	r := pendingRide()

	require.NoError(t, Assign(r, "d1"))

	assert.Equal(t, string(StatusAssigned), r.Status)
	require.NotNil(t, r.DriverID)
	assert.Equal(t, "d1", *r.DriverID)
}

func TestAssignRequiresDriver(t *testing.T) {
	r := pendingRide()

	err := Assign(r, "   ")
	assert.True(t, httperr.IsBusiness(err, "missing_driver"))
	assert.Equal(t, string(StatusPending), r.Status)
}

func TestAssignRejectsCompleted(t *testing.T) {
	r := pendingRide()
	r.Status = string(StatusCompleted)

	err := Assign(r, "d1")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, string(StatusCompleted), r.Status)
	assert.Nil(t, r.DriverID)
}

func TestComplete(t *testing.T) {
	r := assignedRide("d1")
	now := time.Date(2024, 7, 15, 16, 0, 0, 0, time.UTC)

	require.NoError(t, Complete(r, "cliente aguardou 10min", now))

	assert.Equal(t, string(StatusCompleted), r.Status)
	assert.Equal(t, "cliente aguardou 10min", r.Notes)
	require.NotNil(t, r.EndTime)
	assert.True(t, r.EndTime.Equal(now))
}

func TestCompleteRejectsPending(t *testing.T) {
	r := pendingRide()

	err := Complete(r, "", time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Nil(t, r.EndTime)
}

func TestCancelRequiresReason(t *testing.T) {
	r := assignedRide("d1")

	err := Cancel(r, "")
	assert.True(t, httperr.IsBusiness(err, "missing_reason"))
	assert.Equal(t, string(StatusAssigned), r.Status)
}

func TestCancelClearsDriver(t *testing.T) {
	r := assignedRide("d1")

	require.NoError(t, Cancel(r, "cliente desistiu"))

	assert.Equal(t, string(StatusCancelled), r.Status)
	assert.Nil(t, r.DriverID)
	assert.Equal(t, "cliente desistiu", r.Notes)
}

func TestCancelRejectsCompleted(t *testing.T) {
	r := assignedRide("d1")
	r.Status = string(StatusCompleted)

	err := Cancel(r, "tarde demais")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestRefuse(t *testing.T) {
	r := assignedRide("d1")

	require.NoError(t, Refuse(r))

	assert.Equal(t, string(StatusCancelled), r.Status)
	assert.Nil(t, r.DriverID)
}

func TestRefuseRejectsPending(t *testing.T) {
	r := pendingRide()

	err := Refuse(r)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}
