package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"sugarrush/config"
	mockRepo "sugarrush/internal/mocks/repository"
	mockService "sugarrush/internal/mocks/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "secret"
	cfg.ApplyDefaults()

	return cfg
}

type sessionFixture struct {
	users       *mockRepo.MockUserRepository
	revocations *mockRepo.MockRevocationStore
	states      *mockRepo.MockOAuthStateStore
	tokens      *mockService.MockTokenService
	provider    *mockService.MockIdentityProvider
	metrics     *recordingMetrics
	service     *sessionService
}

func newSessionFixture(t *testing.T, now time.Time) *sessionFixture {
	f := &sessionFixture{
		users:       mockRepo.NewMockUserRepository(t),
		revocations: mockRepo.NewMockRevocationStore(t),
		states:      mockRepo.NewMockOAuthStateStore(t),
		tokens:      mockService.NewMockTokenService(t),
		provider:    mockService.NewMockIdentityProvider(t),
		metrics:     newRecordingMetrics(),
	}

	svc := NewSessionService(SessionServiceParams{
		Users:       f.users,
		Revocations: f.revocations,
		States:      f.states,
		Tokens:      f.tokens,
		Provider:    f.provider,
		Metrics:     f.metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*sessionService)
	svc.now = func() time.Time { return now }
	f.service = svc

	return f
}

type recordingMetrics struct {
	logins        map[string]int
	verifications map[string]int
	logouts       map[bool]int
	upstream      map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		logins:        map[string]int{},
		verifications: map[string]int{},
		logouts:       map[bool]int{},
		upstream:      map[string]int{},
	}
}

func (m *recordingMetrics) Login(result string)              { m.logins[result]++ }
func (m *recordingMetrics) Verification(result string)       { m.verifications[result]++ }
func (m *recordingMetrics) Logout(blacklisted bool)          { m.logouts[blacklisted]++ }
func (m *recordingMetrics) UpstreamRevocation(result string) { m.upstream[result]++ }
