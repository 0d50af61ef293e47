package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPathParameter reads a numeric id from the request path. A value that is
// not a valid id aborts the request with a bad request status and the caller
// just returns.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	value := c.Param(parameter)
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("path parameter %q must be a numeric id: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}
