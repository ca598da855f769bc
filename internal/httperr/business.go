package httperr

import (
	"errors"
	"net/http"
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

// --------------------------------------------------
// Mapeamento código → HTTP status + mensagem estável
// (erros de storage nunca saem verbatim, ver Fail)
// --------------------------------------------------

type Descriptor struct {
	Status  int
	Message string
}

var businessTable = map[string]Descriptor{
	"provider_slot_taken":   {http.StatusConflict, "Este horário acabou de ser ocupado."},
	"client_already_booked": {http.StatusConflict, "Você já tem um agendamento com este prestador neste dia."},
	"invalid_date":          {http.StatusBadRequest, "Data inválida ou no passado."},
	"invalid_period":        {http.StatusBadRequest, "Período deve ser morning ou afternoon."},
	"invalid_role":          {http.StatusBadRequest, "Papel deve ser client ou provider."},
	"invalid_state":         {http.StatusConflict, "O agendamento não permite esta transição."},
	"forbidden":             {http.StatusForbidden, "Você não participa deste agendamento."},
	"not_found":             {http.StatusNotFound, "Agendamento não encontrado."},
	"provider_not_found":    {http.StatusNotFound, "Prestador não encontrado."},
	"client_not_found":      {http.StatusNotFound, "Cliente não encontrado."},
	"category_not_found":    {http.StatusNotFound, "Categoria não encontrada."},
	"duplicate_review":      {http.StatusConflict, "Você já avaliou este agendamento."},
	"invalid_rating":        {http.StatusBadRequest, "Nota deve estar entre 0 e 5, em passos de 0.5."},
	"not_yet_reviewable":    {http.StatusPreconditionFailed, "O agendamento ainda não pode ser avaliado."},
}

// Meta resolve status e mensagem de um código de negócio
func Meta(code string) (Descriptor, bool) {
	m, ok := businessTable[code]
	return m, ok
}
