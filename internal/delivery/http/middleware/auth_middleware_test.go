package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger/internal/domain/entity"
	mockUC "ledger/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(uc)

	account := &entity.Account{
		ID:          uuid.New(),
		Email:       "ana.barbosa@domain.com",
		AccessToken: "valid_token",
	}
	uc.EXPECT().
		AccountByToken(mock.Anything, "valid_token").
		Return(account, nil)

	c, rec := newAuthTestContext("Bearer valid_token")

	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true
		assert.Equal(t, account, c.Get("account"))
		assert.Equal(t, account.ID, c.Get("accountID"))

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_UnknownToken(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(uc)

	uc.EXPECT().
		AccountByToken(mock.Anything, "stale_token").
		Return(nil, nil)

	c, rec := newAuthTestContext("Bearer stale_token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
