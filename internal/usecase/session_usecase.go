// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"sugarrush/internal/domain/entity"
)

// --- Output DTOs ---

// LoginURLOutput carries the consent URL and the state it was issued with.
type LoginURLOutput struct {
	URL   string
	State string
}

// LoginOutput is returned once a Google identity has been turned into a session.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// LogoutInput is what the delivery layer knows about the session being closed.
type LogoutInput struct {
	// RawToken is the second field of the Authorization header, possibly empty.
	RawToken string
	// GoogleAccessToken comes from the verified session, empty when none was attached.
	GoogleAccessToken string
}

// LogoutOutput describes what logout did.
type LogoutOutput struct {
	Blacklisted     bool
	UpstreamRevoked bool
}

// SessionUsecase covers the session lifecycle: login, per-request verification and logout.
type SessionUsecase interface {
	// BeginLogin creates a single-use state and the Google consent URL carrying it.
	BeginLogin(ctx context.Context) (*LoginURLOutput, error)

	// CompleteLogin consumes state, exchanges code with Google and issues a session.
	CompleteLogin(ctx context.Context, state, code string) (*LoginOutput, error)

	// IssueSession finds or creates the user for identity and signs a session token.
	IssueSession(ctx context.Context, identity *entity.ExternalIdentity) (*LoginOutput, error)

	// Verify rejects revoked, forged and expired tokens.
	Verify(ctx context.Context, rawToken string) (*entity.SessionClaims, error)

	// Identify checks the signature only. Expiry and the revocation store are ignored.
	Identify(rawToken string) (*entity.SessionClaims, error)

	// Logout revokes the Google grant and blacklists the token for its remaining lifetime.
	Logout(ctx context.Context, input LogoutInput) (*LogoutOutput, error)
}

// Verification results.
const (
	VerifyOK          = "ok"
	VerifyMissing     = "missing"
	VerifyBlacklisted = "blacklisted"
	VerifyInvalid     = "invalid"
	VerifyError       = "error"
)

// Outcomes for logins and upstream revocations.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// AuthMetrics records session lifecycle outcomes.
type AuthMetrics interface {
	Login(result string)
	Verification(result string)
	Logout(blacklisted bool)
	UpstreamRevocation(result string)
}
