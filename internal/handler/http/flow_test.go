package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed/internal/app"
	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/models"
)

func newFlowServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages := &store.Storages{
		UserRepository: store.NewMemoryUserRepository(),
		PostRepository: store.NewMemoryPostRepository(),
	}
	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "flow-test-key",
			TokenIssuer:      "go-feed",
			PasswordHashCost: 4,
			Version:          "test",
		},
		Server:  config.Server{AllowedOrigins: []string{"*"}},
		Workers: config.Workers{HashingPoolSize: 2},
	}

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp.StatusCode, raw
}

func TestFlow_RegisterLoginPost(t *testing.T) {
	srv := newFlowServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/auth/register", "", `{"name":"Ana","email":"ana@x.io","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	var registered models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &registered))
	assert.Equal(t, app.MsgRegistered, registered.Msg)
	assert.Equal(t, "Ana", registered.User.Name)
	assert.NotEmpty(t, registered.Token)

	status, body = call(t, srv, http.MethodPost, "/api/auth/register", "", `{"name":"Ana2","email":"ana@x.io","password":"secret2"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"msg":"An account with this email already exists."}`, string(body))

	status, body = call(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"ana@x.io","password":"wrong12"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"msg":"Invalid Credentials"}`, string(body))

	status, body = call(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"ana@x.io","password":"secret1"}`)
	require.Equal(t, http.StatusOK, status)
	var loggedIn models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &loggedIn))
	assert.Equal(t, registered.User, loggedIn.User)

	status, body = call(t, srv, http.MethodGet, "/api/posts", loggedIn.Token, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = call(t, srv, http.MethodPost, "/api/posts", loggedIn.Token, `{"title":"Hello","description":"first post","author":"Mallory"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	var created models.PostResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Ana", created.Post.Author)
	assert.Equal(t, registered.User.ID, created.Post.AuthorID)

	status, body = call(t, srv, http.MethodGet, "/api/posts", registered.Token, "")
	require.Equal(t, http.StatusOK, status)
	var posts []models.Post
	require.NoError(t, json.Unmarshal(body, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, created.Post.ID, posts[0].ID)

	status, body = call(t, srv, http.MethodGet, "/api/posts", loggedIn.Token+"x", "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"msg":"Invalid Token"}`, string(body))
}
