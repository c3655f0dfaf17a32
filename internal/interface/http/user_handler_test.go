package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Charitie/DevConnector/internal/application"
	"github.com/Charitie/DevConnector/internal/domain/entity"
	"github.com/Charitie/DevConnector/internal/domain/repository"
	"github.com/Charitie/DevConnector/internal/interface/middleware"
	"github.com/Charitie/DevConnector/pkg/helpers"
	"github.com/Charitie/DevConnector/pkg/validation"
)

type stubUserRepo struct{ mock.Mock }

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (m *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func userTestRouter(users repository.UserRepository, tokens *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := &application.UserService{
		Users:  users,
		Tokens: tokens,
		Logger: helpers.NewLogger("test", "test"),
	}
	h := NewUserHandler(svc, helpers.NewLogger("test", "test"))

	r := gin.New()
	r.POST("/users", h.Register)
	r.POST("/auth", h.Login)
	r.GET("/auth", middleware.Auth(tokens), h.Me)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsToken(t *testing.T) {
	users := new(stubUserRepo)
	tokens := helpers.NewTokenManager("test-secret", 24*time.Hour)
	r := userTestRouter(users, tokens)

	id := primitive.NewObjectID()
	users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = id
	}).Return(nil)

	w := postJSON(r, "/users", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), claims.User.ID)
}

func TestRegisterDuplicateEmailShape(t *testing.T) {
	users := new(stubUserRepo)
	r := userTestRouter(users, helpers.NewTokenManager("test-secret", 24*time.Hour))

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(&entity.User{Email: "a@x.com"}, nil)

	w := postJSON(r, "/users", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, w.Body.String())
}

func TestRegisterValidationMessages(t *testing.T) {
	users := new(stubUserRepo)
	r := userTestRouter(users, helpers.NewTokenManager("test-secret", 24*time.Hour))

	w := postJSON(r, "/users", `{"email":"not-an-email","password":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors []struct {
			Msg   string `json:"msg"`
			Param string `json:"param"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	msgs := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		msgs = append(msgs, e.Msg)
	}
	assert.Contains(t, msgs, "Name is required")
	assert.Contains(t, msgs, "Please include a valid email")
	assert.Contains(t, msgs, "Please enter a password with 6 or more characters")
}

func TestLoginWrongPasswordShape(t *testing.T) {
	users := new(stubUserRepo)
	tokens := helpers.NewTokenManager("test-secret", 24*time.Hour)
	r := userTestRouter(users, tokens)

	hash, err := helpers.HashPassword("secret1")
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "a@x.com").Return(&entity.User{Email: "a@x.com", Password: hash}, nil)

	w := postJSON(r, "/auth", `{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid credentials"}]}`, w.Body.String())
}

func TestLoginThenCurrentUser(t *testing.T) {
	users := new(stubUserRepo)
	tokens := helpers.NewTokenManager("test-secret", 24*time.Hour)
	r := userTestRouter(users, tokens)

	id := primitive.NewObjectID()
	hash, err := helpers.HashPassword("secret1")
	require.NoError(t, err)
	u := &entity.User{ID: id, Name: "A", Email: "a@x.com", Password: hash}
	users.On("GetByEmail", mock.Anything, "a@x.com").Return(u, nil)
	users.On("GetByID", mock.Anything, id).Return(u, nil)

	w := postJSON(r, "/auth", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, "User logged in successfully", login.Message)

	// The issued token authenticates GET /auth and the password never leaves.
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	req.Header.Set(middleware.TokenHeader, login.Token)
	r.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"a@x.com"`)
	assert.NotContains(t, w2.Body.String(), hash)
}
