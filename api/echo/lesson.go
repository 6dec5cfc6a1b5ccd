package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/tutor"
)

type lessonApi struct {
	svc    *lesson.Service
	tutors *tutor.Service
}

func registerLessonAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *lesson.Service, tutors *tutor.Service) {
	api := lessonApi{svc: svc, tutors: tutors}

	// tutor endpoints; scoped to the caller
	lg := g.Group("/lessons", jwt)
	lg.POST("", api.create)
	lg.GET("", api.query)
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)

	g.GET("/admin/lessons", api.queryAll, jwt, admin)
}

// Handlers

func (api *lessonApi) create(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	l, err := api.svc.Create(ctx.Request().Context(), caller.ID, data)
	if err != nil {
		return err // student.ErrNotFound when the referenced student is not the caller's
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) query(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	lessons, err := api.svc.QueryByTutor(ctx.Request().Context(), caller.ID)
	if err != nil {
		return errors.Wrap(err, "querying lessons")
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) queryAll(ctx echo.Context) error {
	lessons, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying all lessons")
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	l, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"), caller.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) update(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	var data lesson.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	l, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), caller.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	caller, err := getContextTutor(ctx, api.tutors)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"), caller.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, successResponse("Lesson deleted"))
}
