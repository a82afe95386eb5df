package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/service"
)

type PaymentsHandler struct {
	paymentService PaymentServicer
}

func NewPaymentsHandler(paymentService PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{paymentService: paymentService}
}

type PaymentCreateParams struct {
	PayerID int64           `binding:"omitempty,gt=0"  json:"payer_id"`
	Amount  decimal.Decimal `binding:"required,money"  json:"amount"`
	Notes   string          `binding:"max_bytes=4096" json:"notes"`
}

type PaymentCreateResponse struct {
	Payment     PaymentResponse     `json:"payment"`
	Participant ParticipantResponse `json:"participant"`
}

// Create POST RouteGroup + PaymentsRoute. Плательщик - текущий пользователь, если payer_id не передан.
func (h *PaymentsHandler) Create(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}
	var params PaymentCreateParams
	if !bindJSON(c, &params) {
		return
	}

	payerID := params.PayerID
	if payerID == 0 {
		payerID = getUserIDFromContext(c)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.paymentService.Create(ctx, service.CreatePaymentArgs{
		BillID:  billID,
		PayerID: payerID,
		Amount:  params.Amount,
		Notes:   params.Notes,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, PaymentCreateResponse{
		Payment:     newPaymentResponse(result.Payment),
		Participant: newParticipantResponse(result.Participant),
	})
}

// Index GET RouteGroup + PaymentsRoute. Сначала новые платежи.
func (h *PaymentsHandler) Index(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := h.paymentService.List(ctx, billID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]PaymentResponse, len(payments))
	for i := range payments {
		response[i] = newPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, response)
}
