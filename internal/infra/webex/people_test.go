package webex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/wxsend/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New("test-token", WithBaseURL(srv.URL+"/"))
}

func TestLookupPerson_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/people", r.URL.Path)
		assert.Equal(t, "bob+tag@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"items":[{"id":"P123","displayName":"Bob","emails":["bob@example.com"]},{"id":"P999"}]}`))
	})

	p, err := c.LookupPerson(context.Background(), "bob+tag@example.com")
	require.NoError(t, err)
	assert.Equal(t, "P123", p.ID)
	assert.Equal(t, "Bob", p.DisplayName)
	assert.Equal(t, "bob@example.com", p.Email)
}

func TestLookupPerson_MinimalItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"P123"}]}`))
	})

	p, err := c.LookupPerson(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.Person{ID: "P123", Email: "bob@example.com"}, p)
}

func TestLookupPerson_DataErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "truncated", body: `{"items":[{"id":`, wantMsg: "failed to parse JSON"},
		{name: "missing items", body: `{"people":[]}`, wantErr: domain.ErrNoItems},
		{name: "items not array", body: `{"items":{"id":"P1"}}`, wantErr: domain.ErrNoItems},
		{name: "items null", body: `{"items":null}`, wantErr: domain.ErrNoItems},
		{name: "top level array", body: `[{"id":"P1"}]`, wantErr: domain.ErrNoItems},
		{name: "empty items", body: `{"items":[]}`, wantErr: domain.ErrNoPerson, wantMsg: "nobody@example.com"},
		{name: "missing id", body: `{"items":[{"displayName":"X"}]}`, wantErr: domain.ErrNoPersonID},
		{name: "id not string", body: `{"items":[{"id":42}]}`, wantErr: domain.ErrNoPersonID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.LookupPerson(context.Background(), "nobody@example.com")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindData), "expected data kind, got %v", err)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLookupPerson_ProtocolError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"The request requires a valid access token."}`))
	})

	_, err := c.LookupPerson(context.Background(), "bob@example.com")
	require.Error(t, err)

	status, ok := domain.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "valid access token")
}

func TestLookupPerson_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New("test-token", WithBaseURL(url))
	_, err := c.LookupPerson(context.Background(), "bob@example.com")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransport), "expected transport kind, got %v", err)
	assert.Contains(t, err.Error(), "failed to send GET request")
}

func TestLookupPerson_TruncatedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[`))
	})

	_, err := c.LookupPerson(context.Background(), "bob@example.com")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransport), "expected transport kind, got %v", err)
	assert.Contains(t, err.Error(), "failed to read response text")
}
