package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	mockUsecase "github.com/drbearcub/jw-deployable-app/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func performAuthenticatedRequest(t *testing.T, mw *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		user, err := CurrentUser(c)
		require.NoError(t, err)
		require.NotNil(t, user)
		return c.NoContent(http.StatusOK)
	}

	err := mw.Authenticate(next)(c)

	return rec, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(authUC)

	user := &entity.User{ID: uuid.New(), Email: "teacher@example.edu"}
	authUC.EXPECT().ResolveCurrentIdentity(mock.Anything, "good-token").Return(user, nil)

	rec, err := performAuthenticatedRequest(t, mw, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(authUC)

	rec, err := performAuthenticatedRequest(t, mw, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthenticate_NotBearerScheme(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(authUC)

	rec, err := performAuthenticatedRequest(t, mw, "Basic dXNlcjpwYXNz")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(authUC)

	authUC.EXPECT().
		ResolveCurrentIdentity(mock.Anything, "expired-token").
		Return(nil, domainerrors.ErrUnauthorized)

	rec, err := performAuthenticatedRequest(t, mw, "Bearer expired-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthenticate_StoreFailurePropagates(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	mw := NewAuthMiddleware(authUC)

	authUC.EXPECT().
		ResolveCurrentIdentity(mock.Anything, "good-token").
		Return(nil, domainerrors.ErrStoreUnavailable)

	_, err := performAuthenticatedRequest(t, mw, "Bearer good-token")

	// A store outage must surface as retryable, not as a credential problem.
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestCurrentUser_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	user, err := CurrentUser(c)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
