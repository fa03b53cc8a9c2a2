package handler_test

import (
	"net/http"
	"testing"

	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountJSON struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func TestGetMe(t *testing.T) {
	srv := testutil.NewCatalogServer(t)

	status, _ := doJSON(t, http.MethodGet, srv.URL+"/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	viewer := srv.Token(t, models.RoleViewer)
	status, env := doJSON(t, http.MethodGet, srv.URL+"/auth/me", viewer, nil)
	require.Equal(t, http.StatusOK, status)
	me := decode[accountJSON](t, env)
	assert.Equal(t, models.RoleViewer, me.Role)
	assert.NotEmpty(t, me.Username)
}

func TestAccounts(t *testing.T) {
	srv := testutil.NewCatalogServer(t)
	token := srv.Token(t, models.RoleAdmin)

	status, env := doJSON(t, http.MethodPost, srv.URL+"/accounts", token, map[string]string{
		"username": "  editor ", "password": "long-enough",
	})
	require.Equal(t, http.StatusCreated, status)
	created := decode[accountJSON](t, env)
	assert.Equal(t, "editor", created.Username)
	assert.Equal(t, models.RoleViewer, created.Role)

	status, env = doJSON(t, http.MethodPost, srv.URL+"/accounts", token, map[string]string{
		"username": "editor", "password": "long-enough",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Username already exists", env.Message)

	status, _ = doJSON(t, http.MethodPost, srv.URL+"/accounts", token, map[string]string{
		"username": "short", "password": "1234",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, http.MethodPost, srv.URL+"/accounts", token, map[string]string{
		"username": "root", "password": "long-enough", "role": "owner",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// The new viewer can sign in but not write.
	status, env = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"username": "editor", "password": "long-enough",
	})
	require.Equal(t, http.StatusOK, status)
	viewerToken := decode[struct{ Token string }](t, env).Token
	status, _ = doJSON(t, http.MethodPost, srv.URL+"/accounts", viewerToken, map[string]string{
		"username": "other", "password": "long-enough",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = doJSON(t, http.MethodGet, srv.URL+"/accounts?q=EDIT", token, nil)
	require.Equal(t, http.StatusOK, status)
	page := decode[struct {
		Content       []accountJSON `json:"content"`
		TotalElements int64         `json:"totalElements"`
	}](t, env)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "editor", page.Content[0].Username)
}
