package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"
	mockRepo "github.com/drbearcub/jw-deployable-app/internal/mocks/repository"
	mockService "github.com/drbearcub/jw-deployable-app/internal/mocks/service"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessCode = "ABC123"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config: &config.Config{
			Auth: &config.AuthConfig{
				AccessCodes:  []string{testAccessCode},
				StoreTimeout: 5 * time.Second,
			},
		},
		Logger: logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(input.Email).Return("signed-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

// Hashing is deliberately slow; the insert must still get the full store
// budget rather than whatever the hash left over.
func TestAuthService_Signup_HashTimeDoesNotConsumeStoreBudget(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).RunAndReturn(func(string) (string, error) {
		time.Sleep(200 * time.Millisecond)

		return "hashed", nil
	})
	fx.userRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.Greater(t, time.Until(deadline), 4900*time.Millisecond)
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(input.Email).Return("signed-token", nil)

	_, err := fx.service.Signup(context.Background(), input)

	require.NoError(t, err)
}

func TestAuthService_Signup_InvalidAccessCode(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: "WRONG",
	}

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessCode)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "weak",
		AccessCode: testAccessCode,
	}

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(service.ErrPasswordTooShort)

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "taken@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

// A taken email wins over everything else wrong with the request: the
// password is never even inspected.
func TestAuthService_Signup_EmailTakenWinsOverWeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "taken@example.edu",
		Password:   "weak",
		AccessCode: testAccessCode,
	}

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Signup_LookupStoreUnavailable(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

// Two signups for the same address can interleave between the lookup and the
// insert; the unique index resolves the race and the loser still sees the
// same rejection.
func TestAuthService_Signup_EmailTakenOnInsertRace(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "taken@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Signup_StoreUnavailable(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignupInput{
		Email:      "teacher@example.edu",
		Password:   "Str0ngPass!",
		AccessCode: testAccessCode,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection refused"))

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "teacher@example.edu",
		PasswordHash: "hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ngPass!", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue(user.Email).Return("signed-token", nil)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "Str0ngPass!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "ghost@example.edu").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.edu",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "teacher@example.edu",
		PasswordHash: "hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "teacher@example.edu").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "teacher@example.edu",
		Password: "Str0ngPass!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestAuthService_ResolveCurrentIdentity_Success(t *testing.T) {
	fx := createTestAuthService(t)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "teacher@example.edu",
	}

	fx.tokenService.EXPECT().Verify("good-token").Return(&service.Claims{
		Subject:   user.Email,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	got, err := fx.service.ResolveCurrentIdentity(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_ResolveCurrentIdentity_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Verify("garbage").Return(nil, service.ErrTokenInvalid)

	got, err := fx.service.ResolveCurrentIdentity(context.Background(), "garbage")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_ResolveCurrentIdentity_AccountGone(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Verify("orphan-token").Return(&service.Claims{
		Subject:   "deleted@example.edu",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "deleted@example.edu").
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.ResolveCurrentIdentity(context.Background(), "orphan-token")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
