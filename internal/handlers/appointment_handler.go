package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/httpresp"
	"github.com/UpServices02/service-booking/internal/middleware"
	"github.com/UpServices02/service-booking/internal/timezone"
	ucBooking "github.com/UpServices02/service-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	request *ucBooking.RequestBooking
	accept  *ucBooking.AcceptBooking
	decline *ucBooking.DeclineBooking
	cancel  *ucBooking.CancelBooking
	list    *ucBooking.ListBookings
	agenda  *ucBooking.GetAgenda
	tz      string
}

func NewAppointmentHandler(
	request *ucBooking.RequestBooking,
	accept *ucBooking.AcceptBooking,
	decline *ucBooking.DeclineBooking,
	cancel *ucBooking.CancelBooking,
	list *ucBooking.ListBookings,
	agenda *ucBooking.GetAgenda,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		request: request,
		accept:  accept,
		decline: decline,
		cancel:  cancel,
		list:    list,
		agenda:  agenda,
		tz:      tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestAppointmentRequest struct {
	CategoryID     uint     `json:"category_id" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Period         string   `json:"period" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	SuggestedPrice *float64 `json:"suggested_price" binding:"omitempty,gte=0"`
}

// ======================================================
// CREATE (cliente → prestador)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextActorID).(uint)

	providerID, ok := uintParam(c, "providerId")
	if !ok {
		return
	}

	var req RequestAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.request.Execute(c.Request.Context(), ucBooking.RequestBookingInput{
		ClientID:       clientID,
		ProviderID:     providerID,
		CategoryID:     req.CategoryID,
		Date:           req.Date,
		Period:         req.Period,
		Description:    req.Description,
		SuggestedPrice: req.SuggestedPrice,
	})
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ACCEPT / DECLINE (prestador)
// ======================================================

func (h *AppointmentHandler) Accept(c *gin.Context) {
	providerID, ok := actorParam(c, "providerId")
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.accept.Execute(c.Request.Context(), providerID, id)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Decline(c *gin.Context) {
	providerID, ok := actorParam(c, "providerId")
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.decline.Execute(c.Request.Context(), providerID, id)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL (qualquer parte)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	role := domain.Role(c.GetString(middleware.ContextActorRole))

	param := "clientId"
	if role == domain.RoleProvider {
		param = "providerId"
	}
	actorID, ok := actorParam(c, param)
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), role, actorID, id)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTAGENS
// ======================================================

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	clientID, ok := actorParam(c, "clientId")
	if !ok {
		return
	}

	apps, err := h.list.ForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListForProvider(c *gin.Context) {
	providerID, ok := actorParam(c, "providerId")
	if !ok {
		return
	}

	// ?status=pending devolve só a fila de solicitações
	if c.Query("status") == string(domain.StatusPending) {
		apps, err := h.list.PendingForProvider(c.Request.Context(), providerID)
		if err != nil {
			httperr.Fail(c, err)
			return
		}
		httpresp.List(c, apps)
		return
	}

	apps, err := h.list.ForProvider(c.Request.Context(), providerID)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// AGENDA (pública — mostra slots ocupados do prestador)
// ======================================================

func (h *AppointmentHandler) Agenda(c *gin.Context) {
	providerID, ok := uintParam(c, "providerId")
	if !ok {
		return
	}

	from, err := timezone.ParseDate(h.tz, c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parâmetro from inválido (YYYY-MM-DD).")
		return
	}

	to, err := timezone.ParseDate(h.tz, c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parâmetro to inválido (YYYY-MM-DD).")
		return
	}

	slots, err := h.agenda.Execute(c.Request.Context(), domain.AgendaInput{
		ProviderID: providerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// HELPERS
// ======================================================

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

// actorParam lê o parâmetro de rota e garante que ele bate com o ator
// autenticado do token. Ninguém opera recursos em nome de outro usuário.
func actorParam(c *gin.Context, name string) (uint, bool) {
	id, ok := uintParam(c, name)
	if !ok {
		return 0, false
	}
	if id != c.MustGet(middleware.ContextActorID).(uint) {
		httperr.Forbidden(c, "forbidden", "O recurso não pertence ao usuário autenticado.")
		return 0, false
	}
	return id, true
}
