package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// pathID parses a numeric surrogate key from a path param.
func pathID(c echo.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// queryInt parses an integer query param, falling back to a default when
// absent. The second return is false on a malformed value.
func queryInt(c echo.Context, name string, def int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
