package api

import (
	"net/http"

	"investmentplanner/internal/domain"

	"github.com/gin-gonic/gin"
)

type userSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	InvestmentsIDs []int64 `json:"investmentsIds"`
}

type userInvestmentsResponse struct {
	ID             int64   `json:"id"`
	InvestmentsIDs []int64 `json:"investmentsIds"`
}

type createUserRequest struct {
	Name string `json:"name"`
}

func (m ApiHandler) listUsers(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	users, err := m.UserService.List(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []userSummaryResponse{}
	for _, u := range users {
		out = append(out, userSummaryResponse{
			ID:   u.ID,
			Name: u.Username,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	user, err := m.UserService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:             user.ID,
		Name:           user.Username,
		InvestmentsIDs: user.InvestmentIDs,
	})
}

func (m ApiHandler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}

	in, err := domain.NewUserIn(req.Name)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	id, err := m.UserService.Create(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnCreated(c, id)
}

func (m ApiHandler) listUserInvestments(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	grouped, err := m.UserService.ListInvestments(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []userInvestmentsResponse{}
	for _, g := range grouped {
		out = append(out, userInvestmentsResponse{
			ID:             g.UserID,
			InvestmentsIDs: g.InvestmentIDs,
		})
	}
	c.JSON(http.StatusOK, out)
}
