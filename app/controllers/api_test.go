package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"adboard/config"
	"adboard/initialize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", Issuer: "adboard", ExpMin: 60}}
	app, err := initialize.BuildForTest(cfg, gdb)
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	dec := json.NewDecoder(resp.Body)
	// list endpoints return arrays; those tests decode on their own
	_ = dec.Decode(&decoded)
	return resp, decoded
}

func TestAdvertisementScenario(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/advertisements",
		`{"title":"Sell bike","description":"Barely used road bike","owner":"Alice","user_id":1}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Advertisement created successfully", body["message"])

	listResp, err := http.Get(srv.URL + "/advertisements")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var ads []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&ads))
	require.Len(t, ads, 1)
	newID := uint(ads[0]["id"].(float64))

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/advertisements/%d", srv.URL, newID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sell bike", body["title"])
	assert.Equal(t, "Barely used road bike", body["description"])
	assert.Equal(t, "Alice", body["owner"])
	assert.EqualValues(t, 1, body["user_id"])
	assert.NotEmpty(t, body["creation_time"])
}

func TestAdvertisementValidationError(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/advertisements",
		`{"title":"tiny","description":"Barely used road bike"}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "title")
}

func TestAdvertisementNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/advertisements/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/advertisements/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestAdvertisementPatchOwnerOnly(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/advertisements",
		`{"title":"Sell bike","description":"Barely used road bike","owner":"Bob"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPatch, srv.URL+"/advertisements/1", `{"owner":"Alice"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Advertisement updated successfully", body["message"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/advertisements/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice", body["owner"])
	assert.Equal(t, "Sell bike", body["title"])
	assert.Equal(t, "Barely used road bike", body["description"])
}

func TestUserRoundTripHidesPassword(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"bob@example.com","password":"longenough1"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully", body["message"])
	require.NotNil(t, body["id"])
	id := uint(body["id"].(float64))

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/users/%d", srv.URL, id), nil)
	require.NoError(t, err)
	getResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var raw bytes.Buffer
	_, err = raw.ReadFrom(getResp.Body)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(raw.String()), "password")

	var u map[string]any
	require.NoError(t, json.Unmarshal(raw.Bytes(), &u))
	assert.Equal(t, "bob", u["name"])
	assert.Equal(t, "bob@example.com", u["email"])
	assert.NotEmpty(t, u["creation_time"])
}

func TestUserErrors(t *testing.T) {
	srv := newTestServer(t)

	// short password
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"bob@example.com","password":"short"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "password")

	// not found is a real 404, not a 200 with an error body
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/users/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/users/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserDuplicateConflict(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"bob@example.com","password":"longenough1"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"other@example.com","password":"longenough1"}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestUserPatch(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"bob@example.com","password":"longenough1"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := uint(body["id"].(float64))

	resp, body = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/users/%d", srv.URL, id),
		`{"email":"new@example.com"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User updated successfully", body["message"])
	assert.EqualValues(t, id, body["id"])

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/users/%d", srv.URL, id), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bob", body["name"])
	assert.Equal(t, "new@example.com", body["email"])
}

func TestLoginAndMe(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/users",
		`{"name":"bob","email":"bob@example.com","password":"longenough1"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/login",
		`{"name":"bob","password":"wrongpassword"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/login",
		`{"name":"bob","password":"longenough1"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/users/me", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bob", body["name"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
