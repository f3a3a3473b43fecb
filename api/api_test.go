package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"investmentplanner/internal/domain"
	mock_service "investmentplanner/internal/service/mocks"
	"investmentplanner/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandler struct {
	handler           ApiHandler
	locationService   *mock_service.MockLocationService
	assetService      *mock_service.MockAssetService
	strategyService   *mock_service.MockStrategyService
	investmentService *mock_service.MockInvestmentService
	userService       *mock_service.MockUserService
}

func newTestHandler(t *testing.T) testHandler {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	th := testHandler{
		locationService:   mock_service.NewMockLocationService(ctrl),
		assetService:      mock_service.NewMockAssetService(ctrl),
		strategyService:   mock_service.NewMockStrategyService(ctrl),
		investmentService: mock_service.NewMockInvestmentService(ctrl),
		userService:       mock_service.NewMockUserService(ctrl),
	}
	th.handler = ApiHandler{
		Metrics:           NewMetrics(nil),
		RequestTimeout:    5 * time.Second,
		LocationService:   th.locationService,
		AssetService:      th.assetService,
		StrategyService:   th.strategyService,
		InvestmentService: th.investmentService,
		UserService:       th.userService,
	}
	return th
}

func (th testHandler) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	th.handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLocations(t *testing.T) {
	t.Run("missing location is 404 with kind message", func(t *testing.T) {
		th := newTestHandler(t)
		th.locationService.EXPECT().
			Get(gomock.Any(), int64(7)).
			Return(nil, domain.NotFoundError{Kind: domain.KindLocation})

		w := th.do(http.MethodGet, "/locations/7", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, map[string]any{"message": "Location not found"}, decode(t, w))
	})

	t.Run("list uses default page", func(t *testing.T) {
		th := newTestHandler(t)
		th.locationService.EXPECT().
			List(gomock.Any(), defaultTestPage()).
			Return([]domain.Location{{ID: 1, Name: "EU"}}, nil)

		w := th.do(http.MethodGet, "/locations", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[{"id":1,"name":"EU"}]`, w.Body.String())
	})

	t.Run("invalid take is rejected before the service", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodGet, "/locations?take=0", "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "take", decode(t, w)["field"])
	})

	t.Run("non-integer id", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodGet, "/locations/abc", "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "id", decode(t, w)["field"])
	})

	t.Run("create returns 201 with id", func(t *testing.T) {
		th := newTestHandler(t)
		th.locationService.EXPECT().
			Create(gomock.Any(), domain.LocationIn{Name: "EU"}).
			Return(int64(3), nil)

		w := th.do(http.MethodPost, "/locations", `{"name":"EU"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"id":3}`, w.Body.String())
	})
}

func TestAssets(t *testing.T) {
	t.Run("out of range risk is 422", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/assets", `{"name":"x","apr":0.1,"risk":7}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "risk", decode(t, w)["field"])
	})

	t.Run("unknown location is a conflict", func(t *testing.T) {
		th := newTestHandler(t)
		th.assetService.EXPECT().
			Create(gomock.Any(), domain.AssetIn{Name: "x", Apr: 0.1, Risk: 2, LocationID: util.Int64Pointer(99)}).
			Return(int64(0), domain.ConstraintViolationError{Constraint: "asset_location_id_fkey", Err: fmt.Errorf("fk")})

		w := th.do(http.MethodPost, "/assets", `{"name":"x","apr":0.1,"risk":2,"locationId":99}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		th := newTestHandler(t)
		th.assetService.EXPECT().
			Get(gomock.Any(), int64(1)).
			Return(&domain.Asset{ID: 1, Name: "bond", Apr: 0.04, Risk: 2}, nil)

		w := th.do(http.MethodGet, "/assets/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"id":1,"name":"bond","apr":0.04,"risk":2,"locationId":null}`, w.Body.String())
	})
}

func TestStrategies(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		th := newTestHandler(t)
		th.strategyService.EXPECT().
			Create(gomock.Any(), domain.StrategyIn{
				Date:       util.NewDate(2024, 1, 2),
				Allocation: domain.Allocation{3: 0.2, 7: 0.3},
			}).
			Return(int64(11), nil)

		w := th.do(http.MethodPost, "/strategies", `{"date":"2024-01-02","allocation":{"3":0.2,"7":0.3}}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"id":11}`, w.Body.String())
	})

	t.Run("over-allocated strategy is 422", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/strategies", `{"date":"2024-01-02","allocation":{"1":0.6,"2":0.6}}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "allocation", decode(t, w)["field"])
	})

	t.Run("bad date is 422", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/strategies", `{"date":"01/02/2024","allocation":{}}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "date", decode(t, w)["field"])
	})

	t.Run("get renders allocation map", func(t *testing.T) {
		th := newTestHandler(t)
		th.strategyService.EXPECT().
			Get(gomock.Any(), int64(4)).
			Return(&domain.Strategy{
				ID:         4,
				Date:       util.NewDate(2024, 1, 2),
				Allocation: domain.Allocation{3: 0.2, 7: 0.3},
			}, nil)

		w := th.do(http.MethodGet, "/strategies/4", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"id":4,"date":"2024-01-02","allocation":{"3":0.2,"7":0.3}}`, w.Body.String())
	})

	t.Run("stored strategy failing validation is a server error", func(t *testing.T) {
		th := newTestHandler(t)
		th.strategyService.EXPECT().
			Get(gomock.Any(), int64(6)).
			Return(nil, fmt.Errorf("failed to aggregate strategy 6: %w", domain.ErrInvalidStoredData))

		w := th.do(http.MethodGet, "/strategies/6", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("pool exhaustion is 503 with retry hint", func(t *testing.T) {
		th := newTestHandler(t)
		th.strategyService.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to list: %w", domain.ErrPoolExhausted))

		w := th.do(http.MethodGet, "/strategies", "")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, "1", w.Header().Get("Retry-After"))
	})
}

func TestInvestments(t *testing.T) {
	t.Run("user_id is required", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/investments", `{"amount":10,"strategyId":1,"date":"2024-01-02"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "user_id", decode(t, w)["field"])
	})

	t.Run("zero amount is 422", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/investments?user_id=1", `{"amount":0,"strategyId":1,"date":"2024-01-02"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "amount", decode(t, w)["field"])
	})

	t.Run("create", func(t *testing.T) {
		th := newTestHandler(t)
		th.investmentService.EXPECT().
			Create(gomock.Any(), domain.InvestmentIn{Amount: 10, StrategyID: 1, Date: util.NewDate(2024, 1, 2)}, int64(5)).
			Return(int64(8), nil)

		w := th.do(http.MethodPost, "/investments?user_id=5", `{"amount":10,"strategyId":1,"date":"2024-01-02"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"id":8}`, w.Body.String())
	})

	t.Run("unexpected errors are 500", func(t *testing.T) {
		th := newTestHandler(t)
		th.investmentService.EXPECT().
			Get(gomock.Any(), int64(2)).
			Return(nil, fmt.Errorf("connection reset"))

		w := th.do(http.MethodGet, "/investments/2", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "connection reset", decode(t, w)["error"])
	})
}

func TestUsers(t *testing.T) {
	t.Run("user without investments", func(t *testing.T) {
		th := newTestHandler(t)
		th.userService.EXPECT().
			Get(gomock.Any(), int64(1)).
			Return(&domain.User{ID: 1, Username: "ana", InvestmentIDs: []int64{}}, nil)

		w := th.do(http.MethodGet, "/users/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"id":1,"name":"ana","investmentsIds":[]}`, w.Body.String())
	})

	t.Run("grouped investments", func(t *testing.T) {
		th := newTestHandler(t)
		th.userService.EXPECT().
			ListInvestments(gomock.Any(), defaultTestPage()).
			Return([]domain.UserInvestments{
				{UserID: 2, InvestmentIDs: []int64{10, 12}},
				{UserID: 1, InvestmentIDs: []int64{11}},
			}, nil)

		w := th.do(http.MethodGet, "/user-investments", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[{"id":2,"investmentsIds":[10,12]},{"id":1,"investmentsIds":[11]}]`, w.Body.String())
	})

	t.Run("blank name", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/users", `{"name":"  "}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "username", decode(t, w)["field"])
	})

	t.Run("malformed body", func(t *testing.T) {
		th := newTestHandler(t)

		w := th.do(http.MethodPost, "/users", `{"name":`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "body", decode(t, w)["field"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	th := newTestHandler(t)
	router := th.handler.InitializeRouterEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `planner_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestHealthzWithoutDb(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
