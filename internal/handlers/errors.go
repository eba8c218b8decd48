package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

var admissionMessages = map[domain.Reason]string{
	domain.ReasonInvalidService:       "Serviço inválido.",
	domain.ReasonOutOfHours:           "Horário fora do expediente da barbearia.",
	domain.ReasonPastDate:             "Não é possível agendar em uma data passada.",
	domain.ReasonInsufficientLeadTime: "Agendamentos para hoje precisam de pelo menos 2 horas de antecedência.",
	domain.ReasonBookingConflict:      "Este horário acabou de ser reservado. Escolha outro.",
	domain.ReasonBlockedConflict:      "Este horário está bloqueado pela barbearia.",
}

// writeError maps use case errors onto the JSON error envelope.
func writeError(c *gin.Context, err error) {
	var fe *validators.FieldError
	if errors.As(err, &fe) {
		httperr.WriteField(c, fe.Field, fe.Message)
		return
	}

	var ae *domain.AdmissionError
	if errors.As(err, &ae) {
		status := http.StatusBadRequest
		if ae.IsConflict() {
			status = http.StatusConflict
		}
		httperr.Write(c, status, string(ae.Reason), admissionMessages[ae.Reason])
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
	case errors.Is(err, domain.ErrInvalidTransition):
		httperr.Conflict(c, "invalid_transition", "Mudança de status não permitida.")
	case errors.Is(err, ucBooking.ErrStorageDisabled):
		httperr.Write(c, http.StatusServiceUnavailable, "storage_disabled", "Upload de imagens não configurado.")
	default:
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func badJSON(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
