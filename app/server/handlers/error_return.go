package handlers

import (
	"net/http"

	"atelier-site-core/app/server/types"
	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: http.StatusText(statusCode),
	})
}

// erMsg 需要对外说明具体原因时使用（例如重复订阅、上传校验失败）
func (a *App) erMsg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: msg,
	})
}
