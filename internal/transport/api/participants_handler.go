package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ParticipantsHandler struct {
	participantService ParticipantServicer
}

func NewParticipantsHandler(participantService ParticipantServicer) *ParticipantsHandler {
	return &ParticipantsHandler{participantService: participantService}
}

type ParticipantCreateParams struct {
	UserID      int64           `binding:"required,gt=0"  json:"user_id"`
	ShareAmount decimal.Decimal `binding:"required,money" json:"share_amount"`
}

// Create POST RouteGroup + ParticipantsRoute.
func (h *ParticipantsHandler) Create(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}
	var params ParticipantCreateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	participant, err := h.participantService.Add(ctx, billID, params.UserID, params.ShareAmount)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newParticipantResponse(participant))
}

type SplitParams struct {
	UserIDs []int64 `binding:"required,min=1,max=100,dive,gt=0" json:"user_ids"`
}

// Split POST RouteGroup + SplitRoute. Делит сумму счёта поровну между user_ids.
func (h *ParticipantsHandler) Split(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}
	var params SplitParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	participants, err := h.participantService.SplitEvenly(ctx, billID, params.UserIDs)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]ParticipantResponse, len(participants))
	for i := range participants {
		response[i] = newParticipantResponse(&participants[i])
	}
	c.JSON(http.StatusCreated, response)
}

// Index GET RouteGroup + ParticipantsRoute.
func (h *ParticipantsHandler) Index(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	participants, err := h.participantService.List(ctx, billID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]ParticipantResponse, len(participants))
	for i := range participants {
		response[i] = newParticipantResponse(&participants[i])
	}
	c.JSON(http.StatusOK, response)
}
