// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	deliverycontext "github.com/drbearcub/jw-deployable-app/internal/delivery/context"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	accessCodes  map[string]struct{}
	storeTimeout time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	storeTimeout := time.Duration(0)
	accessCodes := make(map[string]struct{})
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
		for _, code := range params.Config.Auth.AccessCodes {
			accessCodes[code] = struct{}{}
		}
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		accessCodes:  accessCodes,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeContext caps the time spent waiting on the credential store. A store
// that hangs must not hold the request open indefinitely.
func (srv *authService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.storeTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, srv.storeTimeout)
}

// checkEmailAvailable looks the address up under its own store budget and
// translates the outcome: registered means taken, any non-sentinel failure
// means the store cannot answer.
func (srv *authService) checkEmailAvailable(ctx context.Context, email string) error {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	_, err := srv.userRepo.FindByEmail(storeCtx, email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected: email already registered", slog.String("email", email))

		return domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to look up email during signup", slog.Any("error", err))

		return domainerrors.ErrStoreUnavailable
	}

	return nil
}

// Signup registers a new account. The access code allow-list gates who may
// sign up at all; the unique email index in the store is the final arbiter of
// concurrent signups for the same address.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if _, ok := srv.accessCodes[input.AccessCode]; !ok {
		srv.log(ctx).Warn("Signup rejected: invalid access code", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidAccessCode
	}

	// Fast-path rejection for an address that is already registered. The
	// unique index still catches the race where two signups interleave.
	// A taken email wins over any fault in the rest of the input.
	if err := srv.checkEmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Signup rejected: weak password", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrWeakPassword
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Fresh budget for the insert; hashing time must not eat into it.
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	if err := srv.userRepo.Insert(storeCtx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup rejected: email already registered", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailTaken
		}

		srv.log(ctx).Error("Failed to insert user during signup", slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable
	}

	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue token")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token, TokenType: bearerTokenType}, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same rejection so responses cannot be used to
// enumerate registered accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(storeCtx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login rejected: unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token, TokenType: bearerTokenType}, nil
}

// ResolveCurrentIdentity maps a bearer token back to the account it was
// issued for. Every token failure collapses into the same rejection.
func (srv *authService) ResolveCurrentIdentity(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(storeCtx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token is valid but its account no longer exists.
			return nil, domainerrors.ErrUnauthorized
		}

		srv.log(ctx).Error("Failed to look up user during identity resolution", slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable
	}

	return user, nil
}
