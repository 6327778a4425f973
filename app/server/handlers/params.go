package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// paramID 解析路径里的数字 ID
func paramID(c echo.Context) (uint, bool) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(idUint64), true
}
