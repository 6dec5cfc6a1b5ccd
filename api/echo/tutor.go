package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core/tutor"
)

type tutorApi struct {
	svc *tutor.Service
}

func registerTutorAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *tutor.Service) {
	api := tutorApi{svc: svc}

	// un-authed endpoints
	g.POST("/token", api.login)
	g.POST("/tutors", api.register)

	g.GET("/tutors/me", api.me, jwt)

	// admin endpoints; unscoped
	ag := g.Group("/admin/tutors", jwt, admin)
	ag.GET("", api.query)
	ag.GET("/:id", api.retrieve)
	ag.DELETE("/:id", api.destroy)
	ag.PUT("/:id/admin", api.toggleAdmin)
}

// Handlers

func (api *tutorApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := authenticate(ctx, data.Username, data.Password, api.svc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{AccessToken: token, TokenType: "bearer"})
}

func (api *tutorApi) register(ctx echo.Context) error {
	var data tutor.NewTutor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTutor")
	}
	reqCtx := ctx.Request().Context()
	if err := data.Validate(reqCtx, api.svc); err != nil {
		return err
	}

	t, err := api.svc.Register(reqCtx, data)
	if err != nil {
		return errors.Wrap(err, "registering tutor")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *tutorApi) me(ctx echo.Context) error {
	t, err := getContextTutor(ctx, api.svc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *tutorApi) query(ctx echo.Context) error {
	tutors, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tutors")
	}
	return ctx.JSON(http.StatusOK, tutors)
}

func (api *tutorApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *tutorApi) destroy(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.svc)
	if err != nil {
		return err
	}
	id := ctx.Param("id")
	if id == caller.ID { // self-delete forbidden
		return errHttpForbidden
	}

	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, successResponse("Tutor and all associated data deleted"))
}

func (api *tutorApi) toggleAdmin(ctx echo.Context) error {
	t, err := api.svc.ToggleAdmin(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}
