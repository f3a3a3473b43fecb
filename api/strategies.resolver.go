package api

import (
	"net/http"

	"investmentplanner/internal/domain"
	"investmentplanner/internal/util"

	"github.com/gin-gonic/gin"
)

type baseStrategyResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

type strategyResponse struct {
	ID         int64             `json:"id"`
	Date       string            `json:"date"`
	Allocation map[int64]float64 `json:"allocation"`
}

type createStrategyRequest struct {
	Date       string            `json:"date"`
	Allocation map[int64]float64 `json:"allocation"`
}

func (m ApiHandler) listStrategies(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	strategies, err := m.StrategyService.List(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []baseStrategyResponse{}
	for _, s := range strategies {
		out = append(out, baseStrategyResponse{
			ID:   s.ID,
			Date: util.FormatDate(s.Date),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getStrategy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	strategy, err := m.StrategyService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, strategyResponse{
		ID:         strategy.ID,
		Date:       util.FormatDate(strategy.Date),
		Allocation: strategy.Allocation,
	})
}

func (m ApiHandler) createStrategy(c *gin.Context) {
	var req createStrategyRequest
	if err := bindBody(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		returnErrorJson(domain.ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}, c)
		return
	}

	in, err := domain.NewStrategyIn(date, req.Allocation)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	id, err := m.StrategyService.Create(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnCreated(c, id)
}
