package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) healthz(c *gin.Context) {
	if m.Db == nil {
		returnErrorJsonCode(fmt.Errorf("no database configured"), c, http.StatusServiceUnavailable)
		return
	}
	if err := m.Db.PingContext(c.Request.Context()); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to ping db: %w", err), c, http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
