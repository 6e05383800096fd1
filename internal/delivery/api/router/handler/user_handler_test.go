package handler

import (
	"net/http"
	"testing"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	mockUC "shopscore/internal/mocks/usecase"
	"shopscore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestUserHandler_Register_Created(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"email": "asha@example.com", "password": "Password123!", "user_type": "customer"}`)

	userUC.EXPECT().
		RegisterUser(mock.Anything, &usecase.RegisterUserInput{
			Email:    "asha@example.com",
			Password: "Password123!",
			UserType: entity.UserTypeCustomer,
		}).
		Return(&entity.User{Email: "asha@example.com", UserType: entity.UserTypeCustomer}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData[map[string]string](t, rec)
	assert.Equal(t, "User registered successfully", data["message"])
	assert.Equal(t, "customer", data["user_type"])
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"email": "asha@example.com", "password": "Password123!", "user_type": "shop_owner"}`)

	userUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestUserHandler_Register_ValidationFailed(t *testing.T) {
	h, _ := createTestUserHandler(t)
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/register",
		`{"email": "asha@example.com", "password": "short", "user_type": "admin"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Contains(t, errInfo.Message, "password must be at least 8")
	assert.Contains(t, errInfo.Message, "user_type must be one of: customer shop_owner")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
