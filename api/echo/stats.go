package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core/stats"
)

type statsApi struct {
	svc *stats.Service
}

func registerStatsAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *stats.Service) {
	api := statsApi{svc: svc}
	g.GET("/admin/stats", api.retrieve, jwt, admin)
}

func (api *statsApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	return ctx.JSON(http.StatusOK, st)
}
