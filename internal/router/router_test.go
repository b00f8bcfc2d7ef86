package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtauth "pet-health-record/internal/adapters/auth/jwt"
	mem "pet-health-record/internal/adapters/storage/memory"
	"pet-health-record/internal/domain/users"
	"pet-health-record/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Tr1cky-Horse!"

type testServer struct {
	*httptest.Server
	svcs *router.Services
}

func newTestServer(t *testing.T, mods ...func(*router.Options)) *testServer {
	t.Helper()

	store := mem.NewStore()
	opts := router.Options{
		Store:      store,
		JWT:        jwtauth.Config{Secret: "router-test-secret"},
		BcryptCost: bcrypt.MinCost,
	}
	for _, m := range mods {
		m(&opts)
	}

	h, err := router.NewRouter(opts)
	require.NoError(t, err)

	// Mismo store: los servicios extra sirven para crear staff sin HTTP.
	svcs, err := router.NewServices(opts)
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, svcs: svcs}
}

func TestHTTP_EndToEnd_OwnerScoping(t *testing.T) {
	ts := newTestServer(t)

	owner1 := register(t, ts.URL, "owner1@example.com")
	owner2 := register(t, ts.URL, "owner2@example.com")

	// 1) Recién registrado: lista vacía
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets", owner1, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		assert.JSONEq(t, `[]`, string(body))
	}

	// 2) owner/owner_id en el body se ignoran
	petID := createPet(t, ts.URL, owner1, map[string]any{
		"name":     "Rex",
		"species":  "dog",
		"breed":    "Labrador",
		"weight":   30.5,
		"owner_id": 999,
		"owner":    999,
	})
	{
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/api/pets/%d", petID), owner1, nil)
		require.Equal(t, http.StatusOK, st, string(body))

		var p struct {
			OwnerID int64  `json:"owner_id"`
			Weight  string `json:"weight"`
		}
		require.NoError(t, json.Unmarshal(body, &p))
		assert.NotEqual(t, int64(999), p.OwnerID)
		assert.Equal(t, "30.50", p.Weight)
	}

	// 3) Otro owner recibe 404, no 403
	for _, method := range []string{"GET", "PATCH", "DELETE"} {
		st, body := doReq(t, ts.URL, method, fmt.Sprintf("/api/pets/%d", petID), owner2, map[string]any{"name": "x"})
		assert.Equal(t, http.StatusNotFound, st, "%s body=%s", method, string(body))
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets", owner2, nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `[]`, string(body))
	}

	// 4) Vacunar una mascota ajena es error de campo "pet"
	vaccineID := createVaccine(t, ts.URL, "Rabies", 365)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/vaccinations", owner2, map[string]any{
			"pet":              petID,
			"vaccine":          vaccineID,
			"application_date": "2024-01-15",
		})
		require.Equal(t, http.StatusBadRequest, st, string(body))
		assert.JSONEq(t, `{"detail":{"pet":["You can only create vaccinations for your own pets."]}}`, string(body))
	}
}

func TestHTTP_Anonymous(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/pets", "/api/vaccinations", "/api/users"} {
		st, body := doReq(t, ts.URL, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, st, path)
		assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, string(body))
	}

	st, _ := doReq(t, ts.URL, "POST", "/api/pets", "", map[string]any{"name": "Rex", "species": "dog"})
	assert.Equal(t, http.StatusUnauthorized, st)

	// Token inválido corta antes del handler
	st, body := doReq(t, ts.URL, "GET", "/api/vaccines", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.Contains(t, string(body), "Given token not valid for any token type")

	// El catálogo es abierto
	st, _ = doReq(t, ts.URL, "GET", "/api/vaccines", "", nil)
	assert.Equal(t, http.StatusOK, st)
	createVaccine(t, ts.URL, "Distemper", 365)

	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_UpcomingVaccinations(t *testing.T) {
	today := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	ts := newTestServer(t, func(o *router.Options) {
		o.Now = func() time.Time { return today }
	})

	owner := register(t, ts.URL, "owner1@example.com")
	petID := createPet(t, ts.URL, owner, map[string]any{"name": "Rex", "species": "dog"})
	vaccineID := createVaccine(t, ts.URL, "Rabies", 365)

	future := today.AddDate(0, 0, 30).Format("2006-01-02")
	past := today.AddDate(0, 0, -30).Format("2006-01-02")

	for _, due := range []any{future, past, nil} {
		st, body := doReq(t, ts.URL, "POST", "/api/vaccinations", owner, map[string]any{
			"pet":              petID,
			"vaccine":          vaccineID,
			"application_date": today.AddDate(-1, 0, 0).Format("2006-01-02"),
			"next_due_date":    due,
		})
		require.Equal(t, http.StatusCreated, st, string(body))
	}

	var list []struct {
		ID          int64   `json:"id"`
		NextDueDate *string `json:"next_due_date"`
	}

	st, body := doReq(t, ts.URL, "GET", "/api/vaccinations?upcoming=true", owner, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, future, *list[0].NextDueDate)

	// upcoming=false o ausente no filtra por fecha
	for _, q := range []string{"", "?upcoming=false", "?upcoming=maybe"} {
		st, body = doReq(t, ts.URL, "GET", "/api/vaccinations"+q, owner, nil)
		require.Equal(t, http.StatusOK, st)
		require.NoError(t, json.Unmarshal(body, &list))
		assert.Len(t, list, 3, q)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/vaccinations?pet=abc", owner, nil)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"detail":{"pet":["Enter a number."]}}`, string(body))
}

func TestHTTP_UsersDirectory(t *testing.T) {
	ts := newTestServer(t)

	owner := register(t, ts.URL, "owner1@example.com")

	_, err := ts.svcs.Users.CreateUser(context.Background(), users.CreateUserInput{
		Email:    "admin@example.com",
		Password: testPassword,
		FullName: "Admin",
		IsStaff:  true,
	})
	require.NoError(t, err)
	staff := login(t, ts.URL, "admin@example.com")

	st, _ := doReq(t, ts.URL, "GET", "/api/users", owner, nil)
	assert.Equal(t, http.StatusForbidden, st)

	st, body := doReq(t, ts.URL, "GET", "/api/users", staff, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 2)
	assert.NotContains(t, list[0], "password_hash")

	// self ok, ajeno 403, inexistente 404 (solo staff llega a verlo)
	st, _ = doReq(t, ts.URL, "GET", "/api/users/1", owner, nil)
	assert.Equal(t, http.StatusOK, st)
	st, _ = doReq(t, ts.URL, "GET", "/api/users/2", owner, nil)
	assert.Equal(t, http.StatusForbidden, st)
	st, _ = doReq(t, ts.URL, "GET", "/api/users/99", staff, nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_RegisterValidationAndTokens(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/auth/register", "", map[string]any{
		"email":            "owner1@example.com",
		"full_name":        "Owner",
		"password":         "1234567",
		"password_confirm": "1234567",
	})
	require.Equal(t, http.StatusBadRequest, st)
	assert.Contains(t, string(body), "This password is too short. It must contain at least 8 characters.")

	register(t, ts.URL, "owner1@example.com")
	st, body = doReq(t, ts.URL, "POST", "/api/auth/register", "", map[string]any{
		"email":            "owner1@example.com",
		"full_name":        "Owner",
		"password":         testPassword,
		"password_confirm": testPassword,
	})
	require.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"detail":{"email":["user with this email already exists."]}}`, string(body))

	// login -> refresh -> logout -> refresh rechazado
	pair := loginPair(t, ts.URL, "owner1@example.com")

	st, body = doReq(t, ts.URL, "POST", "/api/auth/refresh", "", map[string]any{"refresh": pair.Refresh})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Contains(t, string(body), `"access"`)

	st, _ = doReq(t, ts.URL, "POST", "/api/auth/logout", pair.Access, map[string]any{"refresh": pair.Refresh})
	assert.Equal(t, http.StatusResetContent, st)

	st, body = doReq(t, ts.URL, "POST", "/api/auth/refresh", "", map[string]any{"refresh": pair.Refresh})
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.Contains(t, string(body), "Token is blacklisted")
}

func TestHTTP_CascadeDelete(t *testing.T) {
	ts := newTestServer(t)

	owner := register(t, ts.URL, "owner1@example.com")
	petID := createPet(t, ts.URL, owner, map[string]any{"name": "Mia", "species": "cat"})
	vaccineID := createVaccine(t, ts.URL, "Rabies", 365)

	st, body := doReq(t, ts.URL, "POST", "/api/vaccinations", owner, map[string]any{
		"pet": petID, "vaccine": vaccineID, "application_date": "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, st, string(body))

	st, _ = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/api/vaccines/%d", vaccineID), "", nil)
	require.Equal(t, http.StatusNoContent, st)

	st, body = doReq(t, ts.URL, "GET", "/api/vaccinations", owner, nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func register(t *testing.T, baseURL, email string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/register", "", map[string]any{
		"email":            email,
		"full_name":        "Test Owner",
		"password":         testPassword,
		"password_confirm": testPassword,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		Tokens jwtPair `json:"tokens"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Tokens.Access == "" {
		t.Fatalf("register: missing access token body=%s", string(body))
	}
	return resp.Tokens.Access
}

type jwtPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

func loginPair(t *testing.T, baseURL, email string) jwtPair {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var pair jwtPair
	_ = json.Unmarshal(body, &pair)
	return pair
}

func login(t *testing.T, baseURL, email string) string {
	t.Helper()
	return loginPair(t, baseURL, email).Access
}

func createPet(t *testing.T, baseURL, token string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/pets", token, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	return decodeID(t, body)
}

func createVaccine(t *testing.T, baseURL, name string, periodicity int) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/vaccines", "", map[string]any{
		"name":             name,
		"periodicity_days": periodicity,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vaccine, got %d body=%s", st, string(body))
	}
	return decodeID(t, body)
}

func decodeID(t *testing.T, body []byte) int64 {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
