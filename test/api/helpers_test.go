package api_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/appinvite/internal/invite/http"
	"github.com/aussiebroadwan/appinvite/internal/invite/mailer"
	"github.com/aussiebroadwan/appinvite/internal/invite/service"
	"github.com/aussiebroadwan/appinvite/internal/invite/store/drivers/sqlite"
	"github.com/aussiebroadwan/appinvite/pkg/cryptox"
	"github.com/aussiebroadwan/appinvite/pkg/invitesdk"
	"github.com/aussiebroadwan/appinvite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	sessionSecret = "api-test-session-secret"
	issuer        = "appinvite-test"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "appinvite-api-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// setupServer starts an in-process instance of the service backed by an
// in-memory database and returns an SDK client pointed at it.
func setupServer(t *testing.T) *invitesdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := &service.InvitationService{
		Store:         st,
		Mailer:        mailer.NewLogMailer(),
		CreatePolicy:  service.StaticCreatePolicy{AllowPersonal: true, AllowPublic: true},
		Signer:        jwtx.NewSigner([]byte(sessionSecret)),
		Issuer:        issuer,
		SessionTTL:    time.Hour,
		SessionScopes: []string{httpapi.ScopeInviteRead},
	}

	router := httpapi.NewRouter(
		jwtx.NewVerifier([]byte(sessionSecret), issuer),
		"test",
		st,
		logger,
	)
	router.InvitationService = svc
	router.ApplyRoutes()

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return invitesdk.NewSDKClient(ts.URL)
}

// inviterSession mints a host-framework session token for an inviter and
// wraps it in an authenticated SDK session.
func inviterSession(t *testing.T, client *invitesdk.SDKClient, userID string) *invitesdk.Session {
	t.Helper()

	claims := jwtx.NewSessionClaims(
		userID,
		userID+"@example.com",
		"Test Inviter",
		[]string{httpapi.ScopeInviteRead, httpapi.ScopeInviteWrite},
		issuer,
		time.Hour,
		time.Now(),
	)
	token, err := jwtx.NewSigner([]byte(sessionSecret)).Sign(claims)
	require.NoError(t, err)

	return client.WithToken(token)
}
