package middleware

import (
	"strings"

	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/response"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUserKey is the echo.Context key the resolved identity is stored under.
const currentUserKey = "currentUser"

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token into an account and stores it on the
// request context. A missing, malformed, expired, or orphaned token is
// rejected with 401 and a WWW-Authenticate challenge; handlers behind this
// middleware can assume CurrentUser succeeds.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return m.reject(c)
		}

		user, err := m.authUC.ResolveCurrentIdentity(c.Request().Context(), token)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() != domainerrors.ErrUnauthorized.HTTPCode() {
				// Store failures are not the caller's fault; let the error
				// handler report them as retryable.
				return err
			}

			return m.reject(c)
		}

		c.Set(currentUserKey, user)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}

// CurrentUser returns the identity resolved by Authenticate. It fails when
// called from a route the middleware does not guard.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(currentUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}
