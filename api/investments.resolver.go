package api

import (
	"net/http"
	"strconv"

	"investmentplanner/internal/domain"
	"investmentplanner/internal/util"

	"github.com/gin-gonic/gin"
)

type investmentResponse struct {
	ID         int64   `json:"id"`
	Amount     float64 `json:"amount"`
	StrategyID int64   `json:"strategyId"`
	Date       string  `json:"date"`
}

type createInvestmentRequest struct {
	Amount     float64 `json:"amount"`
	StrategyID int64   `json:"strategyId"`
	Date       string  `json:"date"`
}

func investmentResponseFromDomain(i domain.Investment) investmentResponse {
	return investmentResponse{
		ID:         i.ID,
		Amount:     i.Amount,
		StrategyID: i.StrategyID,
		Date:       util.FormatDate(i.Date),
	}
}

func (m ApiHandler) listInvestments(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	investments, err := m.InvestmentService.List(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []investmentResponse{}
	for _, i := range investments {
		out = append(out, investmentResponseFromDomain(i))
	}
	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getInvestment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	investment, err := m.InvestmentService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, investmentResponseFromDomain(*investment))
}

func (m ApiHandler) createInvestment(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		returnErrorJson(domain.ValidationError{Field: "user_id", Reason: "is required and must be an integer"}, c)
		return
	}

	var req createInvestmentRequest
	if err := bindBody(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		returnErrorJson(domain.ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}, c)
		return
	}

	in, err := domain.NewInvestmentIn(req.Amount, req.StrategyID, date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	id, err := m.InvestmentService.Create(c.Request.Context(), *in, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnCreated(c, id)
}
