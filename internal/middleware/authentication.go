package middleware

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/Akash4693/TradeX-backend/internal/errdef"
	"github.com/Akash4693/TradeX-backend/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewAuthentication(logger *slog.Logger, publicKey *rsa.PublicKey) AuthenticationMiddleware {
	return AuthenticationMiddleware{
		logger:    logger,
		publicKey: publicKey,
	}
}

// AuthenticationMiddleware verifies access tokens issued by the account
// service. Tokens are RS256 signed and carry the user as a claim.
type AuthenticationMiddleware struct {
	logger    *slog.Logger
	publicKey *rsa.PublicKey
}

func (m AuthenticationMiddleware) TokenAuthentication(c *gin.Context) {
	user, err := parseRequest(c.Request, m.publicKey)
	if err != nil {
		m.logger.InfoContext(c.Request.Context(), "Token not valid", "error", err)
		_ = c.Error(errdef.NewUnauthorized("token not valid"))
		c.Abort()
		return
	}

	// Extra precaution to ensure that no errors has occurred, and it's safe to call c.Next()
	if len(c.Errors.Errors()) > 0 {
		c.Abort()
	} else {
		c.Set("user", user)
		c.Request = c.Request.WithContext(model.NewContextWithUser(c.Request.Context(), user))
		c.Next()
	}
}

func parseRequest(request *http.Request, key *rsa.PublicKey) (*model.User, error) {
	token, err := jwt.ParseRequest(
		request,
		jwt.WithKey(jwa.RS256, key),
		jwt.WithHeaderKey("Authorization"),
		jwt.WithCookieKey("accessToken"),
	)
	if err != nil {
		return nil, err
	}

	return extractUser(token)
}

func extractUser(token jwt.Token) (*model.User, error) {
	userData, ok := token.Get("user")
	if !ok {
		return nil, errors.New("user not found in claims")
	}

	bytes, err := json.Marshal(userData)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	err = json.Unmarshal(bytes, user)
	return user, err
}
