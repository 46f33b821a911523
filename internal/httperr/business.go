package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Mensagens e status HTTP por código de negócio
var businessStatus = map[string]int{
	"invalid_transition": http.StatusUnprocessableEntity,
	"missing_driver":     http.StatusBadRequest,
	"missing_reason":     http.StatusBadRequest,
	"invalid_month":      http.StatusBadRequest,
	"ride_not_found":     http.StatusNotFound,
	"driver_not_found":   http.StatusNotFound,
	"client_not_found":   http.StatusNotFound,
	"car_not_found":      http.StatusNotFound,
	"conflict":           http.StatusConflict,
}

var businessMessage = map[string]string{
	"invalid_transition": "A corrida não permite esta ação no status atual.",
	"missing_driver":     "Motorista é obrigatório.",
	"missing_reason":     "Motivo do cancelamento é obrigatório.",
	"invalid_month":      "Mês inválido.",
	"ride_not_found":     "Corrida não encontrada.",
	"driver_not_found":   "Motorista não encontrado.",
	"client_not_found":   "Cliente não encontrado.",
	"car_not_found":      "Carro não encontrado.",
	"conflict":           "A corrida foi alterada por outro usuário. Recarregue e tente novamente.",
}

// Business converte um BusinessError na resposta HTTP correspondente.
// Devolve false quando o erro não é de negócio (o handler trata como
// erro interno).
func Business(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := businessStatus[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg, ok := businessMessage[be.Code]
	if !ok {
		msg = be.Code
	}

	Write(c, status, be.Code, msg)
	return true
}
