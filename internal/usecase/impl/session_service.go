// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"sugarrush/config"
	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/domain/entity"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/domain/repository"
	"sugarrush/internal/domain/service"
	"sugarrush/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const stateBytes = 32

// SessionServiceParams groups the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	Users       repository.UserRepository
	Revocations repository.RevocationStore
	States      repository.OAuthStateStore
	Tokens      service.TokenService
	Provider    service.IdentityProvider
	Metrics     usecase.AuthMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	users       repository.UserRepository
	revocations repository.RevocationStore
	states      repository.OAuthStateStore
	tokens      service.TokenService
	provider    service.IdentityProvider
	metrics     usecase.AuthMetrics
	logger      *slog.Logger

	defaultRole entity.Role
	stateTTL    time.Duration
	now         func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		users:       params.Users,
		revocations: params.Revocations,
		states:      params.States,
		tokens:      params.Tokens,
		provider:    params.Provider,
		metrics:     params.Metrics,
		logger:      params.Logger,
		defaultRole: entity.Role(params.Config.Auth.DefaultRole),
		stateTTL:    params.Config.Auth.StateTTL,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin stores a fresh random state and returns the consent URL carrying it.
func (srv *sessionService) BeginLogin(ctx context.Context) (*usecase.LoginURLOutput, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(buf)

	if err := srv.states.Save(ctx, state, srv.stateTTL); err != nil {
		return nil, errors.Wrap(err, "failed to save oauth state")
	}

	return &usecase.LoginURLOutput{
		URL:   srv.provider.AuthorizationURL(state),
		State: state,
	}, nil
}

// CompleteLogin handles the OAuth callback.
func (srv *sessionService) CompleteLogin(ctx context.Context, state, code string) (*usecase.LoginOutput, error) {
	if state == "" {
		srv.metrics.Login(usecase.ResultFailure)

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	valid, err := srv.states.Consume(ctx, state)
	if err != nil {
		srv.metrics.Login(usecase.ResultFailure)

		return nil, errors.Wrap(err, "failed to consume oauth state")
	}
	if !valid {
		srv.metrics.Login(usecase.ResultFailure)
		srv.log(ctx).Warn("Unknown or expired OAuth state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	if code == "" {
		srv.metrics.Login(usecase.ResultFailure)

		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	identity, err := srv.provider.Exchange(ctx, code)
	if err != nil {
		srv.metrics.Login(usecase.ResultFailure)
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(err.Error())
	}

	return srv.IssueSession(ctx, identity)
}

// IssueSession finds or creates the user for identity and signs a session token for them.
func (srv *sessionService) IssueSession(ctx context.Context, identity *entity.ExternalIdentity) (*usecase.LoginOutput, error) {
	user, err := srv.upsertUser(ctx, identity)
	if err != nil {
		srv.metrics.Login(usecase.ResultFailure)
		srv.log(ctx).Error("Failed to persist user on login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage(err.Error())
	}

	token, _, err := srv.tokens.Issue(entity.SessionClaims{
		GoogleAccessToken: identity.AccessToken,
		UserID:            user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Role:              user.Role,
	})
	if err != nil {
		srv.metrics.Login(usecase.ResultFailure)
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err), slog.String("user_id", user.ID))

		return nil, domainerrors.ErrLoginFailed.WrapMessage(err.Error())
	}

	srv.metrics.Login(usecase.ResultSuccess)
	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// upsertUser creates the account on first login and otherwise refreshes the
// Google-owned profile fields when they changed.
func (srv *sessionService) upsertUser(ctx context.Context, identity *entity.ExternalIdentity) (*entity.User, error) {
	user, err := srv.users.FindByGoogleID(ctx, identity.GoogleID)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = &entity.User{
			GoogleID: identity.GoogleID,
			Username: identity.Name,
			Email:    identity.Email,
			Role:     srv.defaultRole,
		}
		err = srv.users.Create(ctx, user)
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			// A concurrent first login won the insert.
			return srv.users.FindByGoogleID(ctx, identity.GoogleID)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create user")
		}
		srv.log(ctx).Info("Created user on first login", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

		return user, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	if user.Username == identity.Name && user.Email == identity.Email {
		return user, nil
	}

	user.Username = identity.Name
	user.Email = identity.Email
	if err := srv.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to refresh user profile")
	}

	return user, nil
}

// Verify checks the revocation store first, then the token itself. A store
// failure rejects the request.
func (srv *sessionService) Verify(ctx context.Context, rawToken string) (*entity.SessionClaims, error) {
	revoked, err := srv.revocations.IsRevoked(ctx, rawToken)
	if err != nil {
		srv.metrics.Verification(usecase.VerifyError)
		srv.log(ctx).Error("Revocation lookup failed", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	if revoked {
		srv.metrics.Verification(usecase.VerifyBlacklisted)

		return nil, domainerrors.ErrTokenBlacklisted
	}

	claims, err := srv.tokens.Verify(rawToken)
	if err != nil {
		srv.metrics.Verification(usecase.VerifyInvalid)
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	srv.metrics.Verification(usecase.VerifyOK)

	return claims, nil
}

// Identify accepts any token this service signed, expired or revoked, so a user can
// always log out. Forged and unreadable tokens are rejected.
func (srv *sessionService) Identify(rawToken string) (*entity.SessionClaims, error) {
	claims, err := srv.tokens.Decode(rawToken)
	if err != nil {
		return nil, decodeError(err)
	}

	return claims, nil
}

// Logout blacklists the token until its own expiry after revoking the Google grant
// when one is known. Google failures never fail the logout.
func (srv *sessionService) Logout(ctx context.Context, input usecase.LogoutInput) (*usecase.LogoutOutput, error) {
	claims, err := srv.tokens.Decode(input.RawToken)
	if err != nil {
		srv.log(ctx).Info("Refusing logout for unverifiable token", slog.Any("error", err))

		return nil, decodeError(err)
	}

	out := &usecase.LogoutOutput{}

	if input.GoogleAccessToken == "" {
		srv.metrics.UpstreamRevocation(usecase.ResultSkipped)
		srv.log(ctx).Warn("No Google access token found to revoke")
	} else if err := srv.provider.Revoke(ctx, input.GoogleAccessToken); err != nil {
		srv.metrics.UpstreamRevocation(usecase.ResultFailure)
		srv.log(ctx).Warn("Google token revocation failed", slog.Any("error", err))
	} else {
		srv.metrics.UpstreamRevocation(usecase.ResultSuccess)
		out.UpstreamRevoked = true
	}

	remaining := claims.Remaining(srv.now())
	if remaining <= 0 {
		srv.log(ctx).Info("Session token already expired, nothing to blacklist")
		srv.metrics.Logout(false)

		return out, nil
	}

	if err := srv.revocations.Revoke(ctx, input.RawToken, remaining); err != nil {
		srv.log(ctx).Error("Failed to blacklist session token", slog.Any("error", err))

		return nil, domainerrors.ErrLogoutFailed.WrapMessage(err.Error())
	}

	out.Blacklisted = true
	srv.metrics.Logout(true)
	srv.log(ctx).Info("Session token blacklisted",
		slog.String("user_id", claims.UserID),
		slog.Duration("ttl", remaining),
	)

	return out, nil
}

// decodeError maps token decoding failures to 400 for unreadable input and 403 for
// tokens this service did not sign.
func decodeError(err error) error {
	if errors.Is(err, service.ErrTokenMalformed) {
		return domainerrors.ErrInvalidJWT
	}

	return domainerrors.ErrInvalidToken
}
