package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SavingsGoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo *MockSavingsGoalRepository
	mockTxnRepo  *MockTransactionRepository
	metrics      *metrics.Metrics
	service      portssvc.SavingsGoalSvcFacade
	userID       string
	now          time.Time
}

func (suite *SavingsGoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockSavingsGoalRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	m, err := metrics.New("goal_test")
	suite.Require().NoError(err)
	suite.metrics = m
	suite.now = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	suite.service = services.NewSavingsGoalService(suite.mockGoalRepo, suite.mockTxnRepo,
		services.WithSavingsGoalMetrics(m),
		services.WithSavingsGoalClock(func() time.Time { return suite.now }),
	)
	suite.userID = uuid.NewString()
}

func TestSavingsGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsGoalServiceTestSuite))
}

func (suite *SavingsGoalServiceTestSuite) goal(amount int64, months int) domain.SavingsGoal {
	return domain.SavingsGoal{
		GoalID:       uuid.NewString(),
		UserID:       suite.userID,
		TargetAmount: decimal.NewFromInt(amount),
		Months:       months,
		Description:  "Trip",
	}
}

func (suite *SavingsGoalServiceTestSuite) TestCreateSavingsGoal_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(12000)
	suite.mockGoalRepo.On("SaveSavingsGoal", ctx, mock.MatchedBy(func(g domain.SavingsGoal) bool {
		return g.UserID == suite.userID && g.Months == 12 && g.TargetAmount.Equal(amount)
	})).Return(nil).Once()

	goal, err := suite.service.CreateSavingsGoal(ctx, suite.userID, dto.CreateSavingsGoalRequest{Amount: &amount, Months: 12, Description: "Trip"})
	suite.Require().NoError(err)
	suite.NotEmpty(goal.GoalID)
	suite.Equal(suite.now, goal.CreatedAt)
}

func (suite *SavingsGoalServiceTestSuite) TestCreateSavingsGoal_RejectsBadInput() {
	zero := decimal.Zero
	ten := decimal.NewFromInt(10)
	tests := []struct {
		name string
		req  dto.CreateSavingsGoalRequest
	}{
		{"zero amount", dto.CreateSavingsGoalRequest{Amount: &zero, Months: 3}},
		{"missing amount", dto.CreateSavingsGoalRequest{Months: 3}},
		{"zero months", dto.CreateSavingsGoalRequest{Amount: &ten, Months: 0}},
		{"negative months", dto.CreateSavingsGoalRequest{Amount: &ten, Months: -2}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateSavingsGoal(context.Background(), suite.userID, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveSavingsGoal", mock.Anything, mock.Anything)
}

func (suite *SavingsGoalServiceTestSuite) TestListSavingsGoals_Progress() {
	ctx := context.Background()
	goals := []domain.SavingsGoal{suite.goal(12000, 12), suite.goal(2000, 4)}
	txns := []domain.Transaction{
		{UserID: suite.userID, Type: domain.Investor, Amount: decimal.NewFromInt(3000)},
		{UserID: suite.userID, Type: domain.Income, Amount: decimal.NewFromInt(50000)},
	}
	suite.mockGoalRepo.On("FindSavingsGoalsByUser", ctx, suite.userID).Return(goals, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(txns, nil).Once()

	statuses, err := suite.service.ListSavingsGoals(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(statuses, 2)
	suite.True(statuses[0].MonthlyContribution.Equal(decimal.NewFromInt(1000)))
	suite.True(statuses[0].Progress.Equal(decimal.NewFromInt(25)))
	suite.True(statuses[1].MonthlyContribution.Equal(decimal.NewFromInt(500)))
	suite.True(statuses[1].Progress.Equal(decimal.NewFromInt(100)))
}

func (suite *SavingsGoalServiceTestSuite) TestListSavingsGoals_NoGoalsSkipsTransactions() {
	ctx := context.Background()
	suite.mockGoalRepo.On("FindSavingsGoalsByUser", ctx, suite.userID).Return([]domain.SavingsGoal{}, nil).Once()

	statuses, err := suite.service.ListSavingsGoals(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Empty(statuses)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByUser", mock.Anything, mock.Anything)
}

func (suite *SavingsGoalServiceTestSuite) TestUpdateSavingsGoal_NotOwnedLooksMissing() {
	ctx := context.Background()
	goal := suite.goal(100, 2)
	goal.UserID = uuid.NewString()
	suite.mockGoalRepo.On("FindSavingsGoalByID", ctx, goal.GoalID).Return(&goal, nil).Once()

	amount := decimal.NewFromInt(500)
	_, err := suite.service.UpdateSavingsGoal(ctx, suite.userID, goal.GoalID, dto.UpdateSavingsGoalRequest{Amount: &amount, Months: 5})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "UpdateSavingsGoal", mock.Anything, mock.Anything)
}

func (suite *SavingsGoalServiceTestSuite) TestDeleteSavingsGoal_Success() {
	ctx := context.Background()
	goal := suite.goal(100, 2)
	suite.mockGoalRepo.On("FindSavingsGoalByID", ctx, goal.GoalID).Return(&goal, nil).Once()
	suite.mockGoalRepo.On("DeleteSavingsGoal", ctx, goal.GoalID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteSavingsGoal(ctx, suite.userID, goal.GoalID))
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SavingsGoalServiceTestSuite) TestCompleteSavingsGoal_Success() {
	ctx := context.Background()
	goal := suite.goal(5000, 10)

	suite.mockGoalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockGoalRepo.On("FindSavingsGoalForUpdate", ctx, mock.Anything, goal.GoalID, suite.userID).Return(&goal, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Investor &&
			t.Category == domain.WithdrawalCategory &&
			t.CurrencyCode == "THB" &&
			t.Amount.Equal(decimal.NewFromInt(-5000)) &&
			t.Description == "Withdrawal from savings goal: Trip"
	})).Return(nil).Once()
	suite.mockGoalRepo.On("DeleteSavingsGoalInTx", ctx, mock.Anything, goal.GoalID).Return(nil).Once()
	suite.mockGoalRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockGoalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	withdrawal, err := suite.service.CompleteSavingsGoal(ctx, suite.userID, goal.GoalID)
	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), withdrawal.Date)
	suite.Equal(suite.userID, withdrawal.UserID)

	suite.Equal(float64(1), suite.completedCount())
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SavingsGoalServiceTestSuite) TestCompleteSavingsGoal_NotFoundOrNotOwned() {
	ctx := context.Background()
	goalID := uuid.NewString()
	suite.mockGoalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockGoalRepo.On("FindSavingsGoalForUpdate", ctx, mock.Anything, goalID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGoalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CompleteSavingsGoal(ctx, suite.userID, goalID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingsGoalServiceTestSuite) TestCompleteSavingsGoal_InsertFailureRollsBack() {
	ctx := context.Background()
	goal := suite.goal(5000, 10)
	suite.mockGoalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockGoalRepo.On("FindSavingsGoalForUpdate", ctx, mock.Anything, goal.GoalID, suite.userID).Return(&goal, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	suite.mockGoalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CompleteSavingsGoal(ctx, suite.userID, goal.GoalID)
	suite.Require().Error(err)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "DeleteSavingsGoalInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SavingsGoalServiceTestSuite) TestCompleteSavingsGoal_DeleteFailureRollsBackWithdrawal() {
	ctx := context.Background()
	goal := suite.goal(5000, 10)
	suite.mockGoalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockGoalRepo.On("FindSavingsGoalForUpdate", ctx, mock.Anything, goal.GoalID, suite.userID).Return(&goal, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockGoalRepo.On("DeleteSavingsGoalInTx", ctx, mock.Anything, goal.GoalID).Return(errors.New("db down")).Once()
	suite.mockGoalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	withdrawal, err := suite.service.CompleteSavingsGoal(ctx, suite.userID, goal.GoalID)
	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.mockGoalRepo.AssertCalled(suite.T(), "Rollback", ctx, mock.Anything)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.Zero(suite.completedCount())
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// completedCount reads the completed-goals counter from the suite registry.
func (suite *SavingsGoalServiceTestSuite) completedCount() float64 {
	families, err := suite.metrics.Registry().Gather()
	suite.Require().NoError(err)
	for _, mf := range families {
		if mf.GetName() == "goal_test_ledger_savings_goals_completed_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}
