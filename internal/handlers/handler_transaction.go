package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers the /transactions routes. Savings goal routes share the prefix
// and are registered separately.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.GET("/breakdown", h.getBreakdown)
		txns.POST("/convert", h.convertTransaction)
		txns.POST("/simulate", h.simulateExpense)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions with a summary
// @Description Lists the caller's transactions, optionally scoped to one month, with income/expense/investor totals and balance
// @Tags transactions
// @Produce json
// @Param userId query string false "Must match the authenticated user"
// @Param month query string false "Month filter (YYYY-MM)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "ListTransactions")
		return
	}
	userID, ok := callerID(c, params.UserID)
	if !ok {
		return
	}

	var month *domain.Month
	if params.Month != "" {
		m, err := domain.ParseMonth(params.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be formatted as YYYY-MM"})
			return
		}
		month = m
	}

	list, err := h.transactionService.ListTransactions(c.Request.Context(), userID, month)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(list))
}

// getBreakdown godoc
// @Summary Per-period totals
// @Description Groups the caller's transactions by day, month, quarter or year
// @Tags transactions
// @Produce json
// @Param userId query string false "Must match the authenticated user"
// @Param period query string false "day, month, quarter or year" default(month)
// @Success 200 {array} dto.PeriodTotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/breakdown [get]
func (h *transactionHandler) getBreakdown(c *gin.Context) {
	var params dto.BreakdownParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "GetBreakdown")
		return
	}
	userID, ok := callerID(c, params.UserID)
	if !ok {
		return
	}

	totals, err := h.transactionService.GetBreakdown(c.Request.Context(), userID, domain.Period(params.Period))
	if err != nil {
		respondError(c, err, "Failed to build breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodTotalsResponse(totals))
}

// createTransaction godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "CreateTransaction")
		return
	}
	userID, ok := callerID(c, req.UserID)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: txn.TransactionID})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New values"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "UpdateTransaction")
		return
	}
	userID, ok := callerID(c, "")
	if !ok {
		return
	}

	if _, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := callerID(c, "")
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// convertTransaction godoc
// @Summary Convert a transaction to another currency
// @Description Rewrites the amount via the THB pivot. The first pre-conversion amount and currency are preserved.
// @Tags transactions
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertCurrencyRequest true "Transaction and target currency"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ErrorResponse "Missing fields or unsupported currency"
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/convert [post]
func (h *transactionHandler) convertTransaction(c *gin.Context) {
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "ConvertTransaction")
		return
	}
	userID, ok := callerID(c, "")
	if !ok {
		return
	}

	if _, err := h.transactionService.ConvertTransaction(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Failed to convert transaction")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// simulateExpense godoc
// @Summary Simulate a new expense
// @Description Reports the balance after a hypothetical expense and whether it triggers an overspend alert
// @Tags transactions
// @Accept json
// @Produce json
// @Param simulation body dto.SimulateRequest true "Hypothetical expense"
// @Success 200 {object} dto.SimulateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/simulate [post]
func (h *transactionHandler) simulateExpense(c *gin.Context) {
	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "SimulateExpense")
		return
	}
	userID, ok := callerID(c, req.UserID)
	if !ok {
		return
	}

	sim, err := h.transactionService.SimulateExpense(c.Request.Context(), userID, req.NewExpense.Decimal)
	if err != nil {
		respondError(c, err, "Failed to simulate expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToSimulateResponse(sim))
}
