package api

import (
	"strconv"

	"investmentplanner/internal/domain"
	"investmentplanner/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip = 0
	defaultTake = 50
)

func parsePage(c *gin.Context) (repository.Page, error) {
	page := repository.Page{
		Skip: defaultSkip,
		Take: defaultTake,
	}

	if s, ok := c.GetQuery("skip"); ok {
		skip, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return page, domain.ValidationError{Field: "skip", Reason: "must be an integer"}
		}
		page.Skip = skip
	}
	if s, ok := c.GetQuery("take"); ok {
		take, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return page, domain.ValidationError{Field: "take", Reason: "must be an integer"}
		}
		page.Take = take
	}

	return page, page.Validate()
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}

func bindBody(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return domain.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}
