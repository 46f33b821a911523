package ride

import "github.com/gustavovieirarodrigues/taxi-management/internal/httperr"

// ===============================
// Ride Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusAssigned  Status = "atribuido"
	StatusCompleted Status = "concluida"
	StatusCancelled Status = "cancelada"

	// Reservado: nenhuma ação produz este estado hoje
	StatusInProgress Status = "em_andamento"
)

// Labels exibidos nas telas, por status
var Labels = map[Status]string{
	StatusPending:    "Pendente",
	StatusAssigned:   "Atribuída",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluída",
	StatusCancelled:  "Cancelada",
}

// Colors usados nos badges e na grade do calendário
var Colors = map[Status]string{
	StatusPending:    "#f59e0b",
	StatusAssigned:   "#3b82f6",
	StatusInProgress: "#8b5cf6",
	StatusCompleted:  "#10b981",
	StatusCancelled:  "#ef4444",
}

// ===============================
// Validations
// ===============================

// CanAssign define se uma corrida pode receber motorista
func CanAssign(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete define se uma corrida pode ser concluída
func CanComplete(current Status) error {
	if current != StatusAssigned {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel define se uma corrida pode ser cancelada pelo motorista
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAssigned {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanRefuse define se o motorista pode recusar a corrida
func CanRefuse(current Status) error {
	if current != StatusAssigned {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanDelete: corrida concluída nunca é removida
func CanDelete(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// InitialStatus: corrida já nasce atribuída quando o gerente escolhe
// o motorista na criação
func InitialStatus(hasDriver bool) Status {
	if hasDriver {
		return StatusAssigned
	}
	return StatusPending
}
