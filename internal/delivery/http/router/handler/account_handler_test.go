package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger/internal/delivery/http/validator"
	mockUC "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_SignUp_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	accountID := uuid.New()
	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		Run(func(ctx context.Context, input *usecase.SignUpInput) {
			assert.Equal(t, "ana.barbosa@domain.com", input.Email)
			assert.Equal(t, "Password123!", input.Password)
		}).
		Return(&usecase.SignUpOutput{
			ID:          accountID,
			Name:        "Ana Barbosa",
			Email:       "ana.barbosa@domain.com",
			AccessToken: "access_token",
		}, nil)

	body := `{"name":"Ana Barbosa","email":"ana.barbosa@domain.com","password":"Password123!","passwordConfirmation":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), accountID.String())
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestAccountHandler_SignUp_EmailInUse(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		Return(nil, nil)

	body := `{"name":"Ana Barbosa","email":"ana.barbosa@domain.com","password":"Password123!","passwordConfirmation":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_IN_USE")
}

func TestAccountHandler_SignUp_PasswordConfirmationMismatch(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// The usecase is never reached when validation rejects the payload.
	body := `{"name":"Ana Barbosa","email":"ana.barbosa@domain.com","password":"Password123!","passwordConfirmation":"Different123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_SignUp_InvalidEmail(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"name":"Ana Barbosa","email":"not-an-email","password":"Password123!","passwordConfirmation":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.AuthenticateInput")).
		Run(func(ctx context.Context, input *usecase.AuthenticateInput) {
			assert.Equal(t, "ana.barbosa@domain.com", input.Email)
			assert.Equal(t, "Password123!", input.Password)
		}).
		Return("fresh_token", nil)

	body := `{"email":"ana.barbosa@domain.com","password":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/login", body)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh_token")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Authenticate(mock.Anything, mock.AnythingOfType("*usecase.AuthenticateInput")).
		Return("", nil)

	body := `{"email":"ana.barbosa@domain.com","password":"wrong"}`
	c, rec := newTestContext(t, http.MethodPost, "/login", body)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
