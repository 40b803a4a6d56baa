package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// tokenStub is a stand-in for Strava's OAuth token endpoint
type tokenStub struct {
	t         *testing.T
	refreshes int
	fail      bool
	rotateTo  string
}

func (s *tokenStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.refreshes++

		require.NoError(s.t, r.ParseForm())
		assert.Equal(s.t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(s.t, "client-1", r.Form.Get("client_id"))
		assert.Equal(s.t, "secret-1", r.Form.Get("client_secret"))
		assert.NotEmpty(s.t, r.Form.Get("refresh_token"))

		if s.fail {
			http.Error(w, `{"message":"Bad Request"}`, http.StatusBadRequest)
			return
		}

		refresh := r.Form.Get("refresh_token")
		if s.rotateTo != "" {
			refresh = s.rotateTo
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"access-%d","refresh_token":"%s","expires_in":21600,"expires_at":%d}`,
			s.refreshes, refresh, time.Now().Add(6*time.Hour).Unix())
	}
}

func newTestSource(t *testing.T, stub *tokenStub) *TokenSource {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	return NewTokenSource(Credentials{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RefreshToken: "refresh-1",
	}, WithTokenURL(srv.URL))
}

func TestTokenRefreshesWhenEmpty(t *testing.T) {
	stub := &tokenStub{t: t}
	ts := newTestSource(t, stub)

	tok, err := ts.Token()
	require.NoError(t, err)

	assert.Equal(t, "access-1", tok.AccessToken)
	assert.Equal(t, 1, stub.refreshes)
	assert.True(t, ts.Valid())
}

func TestTokenCachedWhileValid(t *testing.T) {
	stub := &tokenStub{t: t}
	ts := newTestSource(t, stub)

	first, err := ts.Token()
	require.NoError(t, err)

	// repeated calls serve the cache, no further exchanges
	for i := 0; i < 5; i++ {
		tok, err := ts.Token()
		require.NoError(t, err)
		assert.Equal(t, first.AccessToken, tok.AccessToken)
	}
	assert.Equal(t, 1, stub.refreshes)
}

func TestTokenRefreshesOnceWhenExpired(t *testing.T) {
	stub := &tokenStub{t: t}
	ts := newTestSource(t, stub)

	_, err := ts.Token()
	require.NoError(t, err)

	// force expiry of the cached token
	ts.mu.Lock()
	ts.token.Expiry = time.Now().Add(-time.Minute)
	ts.mu.Unlock()
	assert.False(t, ts.Valid())

	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "access-2", tok.AccessToken)
	assert.Equal(t, 2, stub.refreshes)
}

func TestTokenRotatesRefreshToken(t *testing.T) {
	stub := &tokenStub{t: t, rotateTo: "refresh-2"}
	ts := newTestSource(t, stub)

	_, err := ts.Token()
	require.NoError(t, err)

	ts.mu.Lock()
	assert.Equal(t, "refresh-2", ts.refresh)
	ts.token.Expiry = time.Now().Add(-time.Minute)
	ts.mu.Unlock()

	// next refresh uses the rotated token
	_, err = ts.Token()
	require.NoError(t, err)
	assert.Equal(t, 2, stub.refreshes)
}

func TestTokenRefreshFailure(t *testing.T) {
	stub := &tokenStub{t: t, fail: true}
	ts := newTestSource(t, stub)

	_, err := ts.Token()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)

	// a failed refresh must not leave a partial token behind
	assert.False(t, ts.Valid())
	ts.mu.Lock()
	assert.Nil(t, ts.token)
	ts.mu.Unlock()
}

func TestTokenFailureKeepsExistingCache(t *testing.T) {
	stub := &tokenStub{t: t}
	ts := newTestSource(t, stub)

	good, err := ts.Token()
	require.NoError(t, err)

	// expire the cache, then make the endpoint fail
	ts.mu.Lock()
	ts.token.Expiry = time.Now().Add(-time.Minute)
	ts.mu.Unlock()
	stub.fail = true

	_, err = ts.Token()
	require.ErrorIs(t, err, ErrAuthentication)

	// the stale token is still there untouched, not half-replaced
	ts.mu.Lock()
	assert.Equal(t, good.AccessToken, ts.token.AccessToken)
	ts.mu.Unlock()
}

var _ oauth2.TokenSource = (*TokenSource)(nil)
