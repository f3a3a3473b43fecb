package api

import (
	"net/http"

	"investmentplanner/internal/domain"

	"github.com/gin-gonic/gin"
)

type locationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createLocationRequest struct {
	Name string `json:"name"`
}

func locationResponseFromDomain(l domain.Location) locationResponse {
	return locationResponse{
		ID:   l.ID,
		Name: l.Name,
	}
}

func (m ApiHandler) listLocations(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	locations, err := m.LocationService.List(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []locationResponse{}
	for _, l := range locations {
		out = append(out, locationResponseFromDomain(l))
	}
	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getLocation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	location, err := m.LocationService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, locationResponseFromDomain(*location))
}

func (m ApiHandler) createLocation(c *gin.Context) {
	var req createLocationRequest
	if err := bindBody(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}

	in, err := domain.NewLocationIn(req.Name)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	id, err := m.LocationService.Create(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnCreated(c, id)
}
