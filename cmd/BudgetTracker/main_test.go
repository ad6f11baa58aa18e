package main

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "github.com/sebuszqo/BudgetTracker/db"
	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type testClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	cfg := &config.Config{
		DBDriver:        config.DriverSQLite,
		JWTSecret:       "integration-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	dbService, err := database.NewDBService(cfg.DBDriver, "file:"+filepath.Join(t.TempDir(), "app.db"), log.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })
	require.NoError(t, dbService.RunMigrations())

	a := newApp(cfg, dbService, log.Nop())
	require.NoError(t, a.seeder.Run(context.Background()))

	server := httptest.NewServer(a.server.Handler())
	t.Cleanup(server.Close)
	return &testClient{t: t, server: server}
}

func (c *testClient) do(method, path, body string) (*http.Response, envelope) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func (c *testClient) login(username, password string) {
	c.t.Helper()
	resp, env := c.do(http.MethodPost, "/api/auth/login", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(c.t, http.StatusOK, resp.StatusCode, env.Message)

	var data map[string]string
	require.NoError(c.t, json.Unmarshal(env.Data, &data))
	c.token = data["access_token"]
}

func TestServer_SeededDashboard(t *testing.T) {
	c := newTestClient(t)
	c.login("alice", "password123")

	resp, env := c.do(http.MethodGet, "/api/protected/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	var summary struct {
		TotalIncome  float64 `json:"total_income"`
		TotalExpense float64 `json:"total_expense"`
		Transactions []struct {
			Category string `json:"category"`
		} `json:"transactions"`
		Trend struct {
			Labels []string  `json:"labels"`
			Values []float64 `json:"values"`
		} `json:"trend"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 3000.0, summary.TotalIncome)
	assert.Equal(t, 1330.0, summary.TotalExpense)
	assert.Len(t, summary.Transactions, 4)
	assert.Len(t, summary.Trend.Labels, 6)
	assert.Equal(t, 1330.0, summary.Trend.Values[5])
}

func TestServer_TransactionAndBudgetFlow(t *testing.T) {
	c := newTestClient(t)

	resp, env := c.do(http.MethodPost, "/api/register", `{"username":"carol","password":"secret1","confirm_password":"secret1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	c.login("carol", "secret1")

	resp, env = c.do(http.MethodPost, "/api/protected/transactions", `{"type":"Expense","amount":12.5,"category":"Food","date":"2024-05-03"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	resp, env = c.do(http.MethodPost, "/api/protected/transactions", `{"type":"Expense","amount":5,"category":"Crypto","date":"2024-05-03"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", env.Status)

	resp, env = c.do(http.MethodPut, "/api/protected/budgets", `{"category":"Food","month":"2024-05","amount":100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	resp, env = c.do(http.MethodGet, "/api/protected/dashboard?date=2024-05-20", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var summary struct {
		CategoryBudgets []struct {
			Category string  `json:"category"`
			Budget   float64 `json:"budget"`
			Spent    float64 `json:"spent"`
		} `json:"category_budgets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Len(t, summary.CategoryBudgets, 1)
	assert.Equal(t, "Food", summary.CategoryBudgets[0].Category)
	assert.Equal(t, 100.0, summary.CategoryBudgets[0].Budget)
	assert.Equal(t, 12.5, summary.CategoryBudgets[0].Spent)

	resp, _ = c.do(http.MethodGet, "/api/protected/export?format=csv", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "budget_transactions_carol_")

	resp, _ = c.do(http.MethodDelete, "/api/protected/transactions/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_PublicAndUnknownRoutes(t *testing.T) {
	c := newTestClient(t)

	resp, _ := c.do(http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := c.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Path not found", env.Message)

	resp, _ = c.do(http.MethodGet, "/api/protected/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// metrics are served after at least one request has been counted
	resp, _ = c.do(http.MethodGet, "/api/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]float64{"total": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
}

func TestServer_RejectsAmountsAboveColumnLimit(t *testing.T) {
	c := newTestClient(t)
	c.login("alice", "password123")

	resp, env := c.do(http.MethodPost, "/api/protected/transactions", `{"type":"Expense","amount":1e308,"category":"Food","date":"2024-05-10"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "amount must be at most 9999999999.99")

	resp, _ = c.do(http.MethodPut, "/api/protected/budgets", `{"category":"Food","month":"2024-05","amount":1e12}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/api/protected/dashboard?date=2024-05-20", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
