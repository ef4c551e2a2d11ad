package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userIDKey is where the auth middleware stores the authenticated
// account id on the request context.
const userIDKey = "userID"

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// currentUserID returns the authenticated account id, or zero for
// anonymous requests.
func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)
	return id
}

func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseQueryInt(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.QueryParam(name))
}
