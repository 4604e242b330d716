package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendly/auction-api/internal/core/domain"
)

// userContextKey is where the auth middleware stores the resolved user.
const userContextKey = "user"

// ctxUser extracts the user resolved by the auth middleware. Its absence
// means the middleware did not run on this route; reject rather than serve
// an unauthenticated request.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
