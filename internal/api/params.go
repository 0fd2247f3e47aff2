package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
)

// idParam parses the :id path parameter. On failure it writes the 400
// envelope and reports false.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		Fail(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// pageParams reads the page/limit/search query parameters. Defaults are
// page 1 and limit 10; out-of-range values are clamped by the service.
func pageParams(c *gin.Context) (page, limit int, search string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	search = c.Query("search")
	return page, limit, search
}
