package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"investmentplanner/internal/domain"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                *sql.DB
	Logger            *zap.SugaredLogger
	Metrics           *Metrics
	RequestTimeout    time.Duration
	LocationService   service.LocationService
	AssetService      service.AssetService
	StrategyService   service.StrategyService
	InvestmentService service.InvestmentService
	UserService       service.UserService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	router.Use(m.logRequestMiddleware)
	router.Use(m.timeoutMiddleware)
	if m.Metrics != nil {
		router.Use(m.Metrics.middleware)
		router.GET("/metrics", m.Metrics.handler())
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to investment planner"})
	})
	router.GET("/healthz", m.healthz)

	router.GET("/locations", m.listLocations)
	router.GET("/locations/:id", m.getLocation)
	router.POST("/locations", m.createLocation)

	router.GET("/assets", m.listAssets)
	router.GET("/assets/:id", m.getAsset)
	router.POST("/assets", m.createAsset)

	router.GET("/strategies", m.listStrategies)
	router.GET("/strategies/:id", m.getStrategy)
	router.POST("/strategies", m.createStrategy)

	router.GET("/investments", m.listInvestments)
	router.GET("/investments/:id", m.getInvestment)
	router.POST("/investments", m.createInvestment)

	router.GET("/users", m.listUsers)
	router.GET("/users/:id", m.getUser)
	router.POST("/users", m.createUser)
	router.GET("/user-investments", m.listUserInvestments)

	return router
}

// StartApi serves until ctx is cancelled, then drains in-flight requests.
func (m ApiHandler) StartApi(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: m.InitializeRouterEngine(),
	}

	errCh := make(chan error, 1)
	go func() {
		m.logger().Infof("listening on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m ApiHandler) logger() *zap.SugaredLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.S()
}

func returnErrorJson(err error, c *gin.Context) {
	var (
		validationErr domain.ValidationError
		notFoundErr   domain.NotFoundError
		constraintErr domain.ConstraintViolationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"message": validationErr.Error(),
			"field":   validationErr.Field,
		})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"message": notFoundErr.Error(),
		})
	case errors.As(err, &constraintErr):
		returnErrorJsonCode(err, c, http.StatusConflict)
	case errors.Is(err, domain.ErrPoolExhausted), errors.Is(err, context.DeadlineExceeded):
		c.Header("Retry-After", "1")
		returnErrorJsonCode(err, c, http.StatusServiceUnavailable)
	default:
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	if code >= 500 {
		logger.FromContext(c.Request.Context()).Error(err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type createdResponse struct {
	ID int64 `json:"id"`
}

func returnCreated(c *gin.Context, id int64) {
	c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New().String()
	lg := m.logger().With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.FullPath(),
	)
	c.Header("X-Request-ID", requestID)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), lg))

	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	latencyMs := time.Since(start).Milliseconds()
	if status >= 500 {
		lg.Errorw("request failed", "status", status, "latencyMs", latencyMs)
	} else {
		lg.Infow("request completed", "status", status, "latencyMs", latencyMs)
	}
}

func (m ApiHandler) timeoutMiddleware(c *gin.Context) {
	if m.RequestTimeout <= 0 {
		c.Next()
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), m.RequestTimeout)
	defer cancel()
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
