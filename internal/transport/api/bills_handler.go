package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/internal/service"
)

type BillsHandler struct {
	billService BillServicer
}

func NewBillsHandler(billService BillServicer) *BillsHandler {
	return &BillsHandler{billService: billService}
}

type BillCreateParams struct {
	Title       string          `binding:"required,max=200" json:"title"`
	Description string          `binding:"max_bytes=65536"  json:"description"`
	TotalAmount decimal.Decimal `binding:"required,money"   json:"total_amount"`
}

// Create POST RouteGroup + BillsRoute. Автор счёта - текущий пользователь.
func (h *BillsHandler) Create(c *gin.Context) {
	var params BillCreateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.billService.Create(ctx, service.CreateBillArgs{
		CreatedByID: getUserIDFromContext(c),
		Title:       params.Title,
		Description: params.Description,
		TotalAmount: params.TotalAmount,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBillResponse(bill))
}

type BillListParams struct {
	All    bool   `form:"all"`
	Mine   bool   `form:"mine"`
	Search string `binding:"max=200" form:"q"`
	Limit  uint   `binding:"max=100" form:"limit"`
	Offset uint   `form:"offset"`
}

// Index GET RouteGroup + BillsRoute. Незакрытые счета текущего пользователя, ?all=1 - всех пользователей,
// ?mine=1 - только созданные текущим пользователем.
func (h *BillsHandler) Index(c *gin.Context) {
	h.list(c, false)
}

// Past GET RouteGroup + PastBillsRoute. Закрытые счета, параметры как у Index.
func (h *BillsHandler) Past(c *gin.Context) {
	h.list(c, true)
}

func (h *BillsHandler) list(c *gin.Context, settled bool) {
	var params BillListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}

	userID := getUserIDFromContext(c)
	if params.All {
		userID = 0
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		bills []domain.Bill
		err   error
	)
	switch {
	case params.Mine:
		bills, err = h.billService.List(ctx, repoargs.BillFilter{
			CreatedByID: getUserIDFromContext(c),
			Settled:     &settled,
			Search:      params.Search,
			Limit:       params.Limit,
			Offset:      params.Offset,
		})
	case params.Search != "" || params.Limit > 0 || params.Offset > 0:
		bills, err = h.billService.List(ctx, repoargs.BillFilter{
			ParticipantID: userID,
			Settled:       &settled,
			Search:        params.Search,
			Limit:         params.Limit,
			Offset:        params.Offset,
		})
	case settled:
		bills, err = h.billService.ListSettled(ctx, userID)
	default:
		bills, err = h.billService.ListActive(ctx, userID)
	}
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	if len(bills) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]BillResponse, len(bills))
	for i := range bills {
		response[i] = newBillResponse(&bills[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + BillRoute. Счёт с участниками, остатками и платежами.
func (h *BillsHandler) Show(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.billService.Details(ctx, billID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newBillDetailsResponse(details))
}

type BillUpdateParams struct {
	Title       *string          `binding:"omitempty,max=200"       json:"title"`
	Description *string          `binding:"omitempty,max_bytes=65536" json:"description"`
	TotalAmount *decimal.Decimal `binding:"omitempty,money"         json:"total_amount"`
}

// Update PATCH RouteGroup + BillRoute. Меняет только переданные поля.
func (h *BillsHandler) Update(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}
	var params BillUpdateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.billService.Update(ctx, billID, service.UpdateBillArgs{
		Title:       params.Title,
		Description: params.Description,
		TotalAmount: params.TotalAmount,
	})
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newBillResponse(bill))
}

// Delete DELETE RouteGroup + BillRoute. Удаляет счёт вместе с участниками и платежами.
func (h *BillsHandler) Delete(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.billService.Delete(ctx, billID); err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Settle POST RouteGroup + SettleBillRoute.
func (h *BillsHandler) Settle(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.billService.MarkSettled(ctx, billID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newBillResponse(bill))
}
