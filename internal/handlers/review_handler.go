package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/httpresp"
	"github.com/UpServices02/service-booking/internal/middleware"
	ucReview "github.com/UpServices02/service-booking/internal/usecase/review"
)

type ReviewHandler struct {
	submit  *ucReview.SubmitReview
	visible *ucReview.GetVisibleReviews
}

func NewReviewHandler(
	submit *ucReview.SubmitReview,
	visible *ucReview.GetVisibleReviews,
) *ReviewHandler {
	return &ReviewHandler{
		submit:  submit,
		visible: visible,
	}
}

type SubmitReviewRequest struct {
	Rating  float64 `json:"rating" binding:"gte=0,lte=5"`
	Comment string  `json:"comment"`
}

// Submit: o papel do avaliador vem do token, nunca do corpo
func (h *ReviewHandler) Submit(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextActorID).(uint)
	role := c.GetString(middleware.ContextActorRole)

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rv, err := h.submit.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		AppointmentID: id,
		RaterRole:     role,
		ActorID:       actorID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.Created(c, rv)
}

func (h *ReviewHandler) GetVisible(c *gin.Context) {
	role := c.GetString(middleware.ContextActorRole)

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.visible.Execute(c.Request.Context(), id, role)
	if err != nil {
		httperr.Fail(c, err)
		return
	}

	httpresp.OK(c, out)
}
