package handler

import (
	"errors"
	"net/http"

	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/gin-gonic/gin"
)

// GetUserFromContext returns the authenticated user set by the authentication
// middleware. A missing user means the route was wired without the gate; the
// request is aborted.
func GetUserFromContext(c *gin.Context) (*model.User, error) {
	userData, exists := c.Get("user")
	if !exists {
		err := errors.New("user not found on context")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return nil, err
	}

	user, ok := userData.(*model.User)
	if !ok {
		err := errors.New("failed to parse user data")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return nil, err
	}
	return user, nil
}
