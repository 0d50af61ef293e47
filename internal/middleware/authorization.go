package middleware

import (
	"log/slog"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/internal/handler"
	"github.com/gin-gonic/gin"
)

func NewAuthorization(logger *slog.Logger) AuthorizationMiddleware {
	return AuthorizationMiddleware{
		logger: logger,
	}
}

// AuthorizationMiddleware holds the role gates evaluated before a handler
// runs. Services trust that a request reaching them already passed the gate
// required for that operation.
type AuthorizationMiddleware struct {
	logger *slog.Logger
}

func (m AuthorizationMiddleware) RequireSeller(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		return
	}

	if !user.IsSeller() {
		m.logger.WarnContext(c.Request.Context(), "User tried to access seller restricted endpoint", "user", user.ID)
		_ = c.Error(errdef.NewForbidden("seller access denied"))
		c.Abort()
		return
	}

	// Extra precaution to ensure that no errors has occurred, and it's safe to call c.Next()
	if len(c.Errors.Errors()) > 0 {
		c.Abort()
	} else {
		c.Next()
	}
}

func (m AuthorizationMiddleware) RequireAdministrator(c *gin.Context) {
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		return
	}

	if !user.IsAdministrator() {
		m.logger.WarnContext(c.Request.Context(), "User tried to access administrator restricted endpoint", "user", user.ID)
		_ = c.Error(errdef.NewForbidden("administrator access denied"))
		c.Abort()
		return
	}

	if len(c.Errors.Errors()) > 0 {
		c.Abort()
	} else {
		c.Next()
	}
}
