package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

type studentApi struct {
	svc    *student.Service
	tutors *tutor.Service
}

func registerStudentAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *student.Service, tutors *tutor.Service) {
	api := studentApi{svc: svc, tutors: tutors}

	// tutor endpoints; scoped to the caller
	sg := g.Group("/students", jwt)
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
	sg.PUT("/:id/payment", api.togglePayment)
	sg.PUT("/:id/homework", api.toggleHomework)

	g.GET("/admin/students", api.queryAll, jwt, admin)
}

// Handlers

func (api *studentApi) create(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.Create(ctx.Request().Context(), caller.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) query(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	students, err := api.svc.QueryByTutor(ctx.Request().Context(), caller.ID)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) queryAll(ctx echo.Context) error {
	students, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying all students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	s, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"), caller.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), caller.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"), caller.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, successResponse("Student deleted"))
}

// The toggle endpoints take no body and flip blindly; any supplied
// `status` query parameter is ignored.

func (api *studentApi) togglePayment(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	s, err := api.svc.TogglePayment(ctx.Request().Context(), ctx.Param("id"), caller.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) toggleHomework(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	s, err := api.svc.ToggleHomework(ctx.Request().Context(), ctx.Param("id"), caller.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}
