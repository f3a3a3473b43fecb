package integration_tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"investmentplanner/cmd"
	plannerdb "investmentplanner/internal/db"
	"investmentplanner/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSchemaName = "planner_it"

var plannerTables = []string{
	"investment_user",
	"investment",
	"asset_strategy",
	"strategy",
	"asset",
	"location",
	"user_account",
}

// newTestServer migrates a dedicated schema, empties it and serves the full
// router over it. Skips when the test database is unreachable.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbConn, err := util.NewTestDb()
	require.NoError(t, err)
	if err := dbConn.Ping(); err != nil {
		dbConn.Close()
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { dbConn.Close() })

	cfg := util.DefaultConfig()
	cfg.Db.Schema = testSchemaName
	cfg.RequestTimeout = 5 * time.Second
	dbConn.SetMaxOpenConns(cfg.Db.PoolSize)

	require.NoError(t, plannerdb.Migrate(context.Background(), dbConn, testSchemaName))
	require.NoError(t, truncateTables(dbConn))

	server := httptest.NewServer(cmd.NewApiHandler(dbConn, cfg, zap.S()).InitializeRouterEngine())
	t.Cleanup(server.Close)

	return server
}

func truncateTables(dbConn *sql.DB) error {
	names := []string{}
	for _, table := range plannerTables {
		names = append(names, pq.QuoteIdentifier(testSchemaName)+"."+pq.QuoteIdentifier(table))
	}
	_, err := dbConn.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(names, ", ")))
	return err
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(respBody, out), string(respBody))
	}

	return resp.StatusCode
}

// tryCreate posts body and returns the status and generated id. It reports
// failures as errors so it can run off the test goroutine.
func tryCreate(server *httptest.Server, path string, body any) (int, int64, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, 0, err
	}

	resp, err := server.Client().Post(server.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	out := createdResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return resp.StatusCode, 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, out.ID, nil
}

type createdResponse struct {
	ID int64 `json:"id"`
}

func create(t *testing.T, server *httptest.Server, path string, body any) int64 {
	t.Helper()

	out := createdResponse{}
	status := doRequest(t, server, http.MethodPost, path, body, &out)
	require.Equal(t, http.StatusCreated, status)
	require.NotZero(t, out.ID)
	return out.ID
}

func seedAssets(t *testing.T, server *httptest.Server, n int) []int64 {
	t.Helper()

	ids := []int64{}
	for i := 0; i < n; i++ {
		ids = append(ids, create(t, server, "/assets", map[string]any{
			"name": fmt.Sprintf("asset-%d", i),
			"apr":  0.05,
			"risk": 3,
		}))
	}
	return ids
}
