package application

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
)

type mockUserRepo struct{ mock.Mock }

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

var _ repository.ProfileRepository = (*mockProfileRepo)(nil)

func (m *mockProfileRepo) GetByUser(ctx context.Context, user primitive.ObjectID) (*entity.Profile, error) {
	args := m.Called(ctx, user)
	if p, ok := args.Get(0).(*entity.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]entity.Profile, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]entity.Profile); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileRepo) Save(ctx context.Context, p *entity.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfileRepo) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	return m.Called(ctx, user).Error(0)
}

type mockPostRepo struct{ mock.Mock }

var _ repository.PostRepository = (*mockPostRepo)(nil)

func (m *mockPostRepo) Create(ctx context.Context, p *entity.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) List(ctx context.Context) ([]entity.Post, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]entity.Post); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Save(ctx context.Context, p *entity.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPostRepo) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	return m.Called(ctx, user).Error(0)
}
