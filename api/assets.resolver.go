package api

import (
	"net/http"

	"investmentplanner/internal/domain"

	"github.com/gin-gonic/gin"
)

type assetResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Apr        float64 `json:"apr"`
	Risk       int     `json:"risk"`
	LocationID *int64  `json:"locationId"`
}

type createAssetRequest struct {
	Name       string  `json:"name"`
	Apr        float64 `json:"apr"`
	Risk       int     `json:"risk"`
	LocationID *int64  `json:"locationId"`
}

func assetResponseFromDomain(a domain.Asset) assetResponse {
	return assetResponse{
		ID:         a.ID,
		Name:       a.Name,
		Apr:        a.Apr,
		Risk:       a.Risk,
		LocationID: a.LocationID,
	}
}

func (m ApiHandler) listAssets(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	assets, err := m.AssetService.List(c.Request.Context(), page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []assetResponse{}
	for _, a := range assets {
		out = append(out, assetResponseFromDomain(a))
	}
	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getAsset(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	asset, err := m.AssetService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, assetResponseFromDomain(*asset))
}

func (m ApiHandler) createAsset(c *gin.Context) {
	var req createAssetRequest
	if err := bindBody(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}

	in, err := domain.NewAssetIn(req.Name, req.Apr, req.Risk, req.LocationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	id, err := m.AssetService.Create(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnCreated(c, id)
}
