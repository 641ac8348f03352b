package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type savingsGoalHandler struct {
	goalService portssvc.SavingsGoalSvcFacade
}

func newSavingsGoalHandler(gs portssvc.SavingsGoalSvcFacade) *savingsGoalHandler {
	return &savingsGoalHandler{goalService: gs}
}

func registerSavingsGoalRoutes(rg *gin.RouterGroup, goalService portssvc.SavingsGoalSvcFacade) {
	h := newSavingsGoalHandler(goalService)

	goals := rg.Group("/transactions/savings-goals")
	{
		goals.GET("", h.listSavingsGoals)
		goals.POST("", h.createSavingsGoal)
		goals.PUT("/:id", h.updateSavingsGoal)
		goals.DELETE("/:id", h.deleteSavingsGoal)
		goals.POST("/:id/complete", h.completeSavingsGoal)
	}
}

// listSavingsGoals godoc
// @Summary List savings goals
// @Description Lists the caller's goals with monthly contribution and progress against the cumulative investor total
// @Tags savings-goals
// @Produce json
// @Param userId query string false "Must match the authenticated user"
// @Success 200 {array} dto.SavingsGoalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/savings-goals [get]
func (h *savingsGoalHandler) listSavingsGoals(c *gin.Context) {
	userID, ok := callerID(c, c.Query("userId"))
	if !ok {
		return
	}

	goals, err := h.goalService.ListSavingsGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list savings goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(goals))
}

// createSavingsGoal godoc
// @Summary Create a savings goal
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateSavingsGoalRequest true "Goal details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/savings-goals [post]
func (h *savingsGoalHandler) createSavingsGoal(c *gin.Context) {
	var req dto.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "CreateSavingsGoal")
		return
	}
	userID, ok := callerID(c, req.UserID)
	if !ok {
		return
	}

	goal, err := h.goalService.CreateSavingsGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create savings goal")
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{ID: goal.GoalID})
}

// updateSavingsGoal godoc
// @Summary Update a savings goal
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.UpdateSavingsGoalRequest true "New values"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/savings-goals/{id} [put]
func (h *savingsGoalHandler) updateSavingsGoal(c *gin.Context) {
	var req dto.UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "UpdateSavingsGoal")
		return
	}
	userID, ok := callerID(c, "")
	if !ok {
		return
	}

	if _, err := h.goalService.UpdateSavingsGoal(c.Request.Context(), userID, c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update savings goal")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// deleteSavingsGoal godoc
// @Summary Delete a savings goal
// @Tags savings-goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found or owned by another user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/savings-goals/{id} [delete]
func (h *savingsGoalHandler) deleteSavingsGoal(c *gin.Context) {
	userID, ok := callerID(c, "")
	if !ok {
		return
	}

	if err := h.goalService.DeleteSavingsGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete savings goal")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// completeSavingsGoal godoc
// @Summary Complete a savings goal
// @Description Records a THB investor withdrawal of the goal amount and deletes the goal, atomically
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param body body dto.CompleteSavingsGoalRequest false "Optional owner check"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Goal not found or not owned"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/savings-goals/{id}/complete [post]
func (h *savingsGoalHandler) completeSavingsGoal(c *gin.Context) {
	var req dto.CompleteSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err, "CompleteSavingsGoal")
		return
	}
	userID, ok := callerID(c, req.UserID)
	if !ok {
		return
	}

	withdrawal, err := h.goalService.CompleteSavingsGoal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to complete savings goal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Savings goal completed",
		slog.String("goal_id", c.Param("id")),
		slog.String("withdrawal_id", withdrawal.TransactionID))
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
