package model

import "context"

const (
	AdministratorRole = "Admin"
	SellerRole        = "seller"
)

// User is the authenticated principal extracted from an access token. Users are
// managed by the account service; this service only consumes the claims.
// swagger:model
type User struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	ShopID uint   `json:"shopId,omitempty"`
}

func (u *User) IsAdministrator() bool {
	return u.Role == AdministratorRole
}

func (u *User) IsSeller() bool {
	return u.Role == SellerRole
}

type ctxKey int

var userKey ctxKey

// NewContextWithUser returns a new [context.Context] that carries user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored in ctx, if any. Public routes do
// not have one.
func GetUserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey).(*User)
	return user, ok
}
