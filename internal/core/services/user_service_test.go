package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: " alice ", Password: "secret123"})
	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.Equal(domain.RoleUser, user.Role)
	suite.NotEqual("secret123", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("secret123", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: "alice", Password: "secret123"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash, Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bob").Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.AuthenticateUser(ctx, "alice", "secret123")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "alice", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "bob", "secret123")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_AdminOnly() {
	ctx := context.Background()
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	member := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
	all := []domain.User{*admin, *member}
	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil)
	suite.mockUserRepo.On("FindUsers", ctx).Return(all, nil).Once()

	users, err := suite.service.ListUsers(ctx, admin.UserID)
	suite.Require().NoError(err)
	suite.Len(users, 2)

	_, err = suite.service.ListUsers(ctx, member.UserID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNumberOfCalls(suite.T(), "FindUsers", 1)
}
