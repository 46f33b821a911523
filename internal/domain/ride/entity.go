package ride

import (
	"strings"
	"time"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Cada ação valida a transição e muta a corrida em memória; quem chama
// é dono da persistência e só deve tratar o resultado como estado novo
// depois que o write confirmar.

func Assign(r *models.Ride, driverID string) error {
	if strings.TrimSpace(driverID) == "" {
		return httperr.ErrBusiness("missing_driver")
	}

	if err := CanAssign(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusAssigned)
	r.DriverID = &driverID
	return nil
}

func Complete(r *models.Ride, observation string, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.Notes = observation
	r.EndTime = &now
	return nil
}

func Cancel(r *models.Ride, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return httperr.ErrBusiness("missing_reason")
	}

	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.DriverID = nil
	r.Notes = reason
	return nil
}

func Refuse(r *models.Ride) error {
	if err := CanRefuse(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.DriverID = nil
	return nil
}
