package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/als-computing/splash-userservice/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id string, idType IDType, fetchGroups bool) (*models.User, error) {
	args := m.Called(ctx, id, idType, fetchGroups)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUserGroupDetails(ctx context.Context, orcid string) (*models.V2UserGroupDetails, error) {
	args := m.Called(ctx, orcid)
	if details := args.Get(0); details != nil {
		return details.(*models.V2UserGroupDetails), args.Error(1)
	}
	return nil, args.Error(1)
}
