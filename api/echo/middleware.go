package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/creativedak/tutor1/core/tutor"
)

// adminMiddleware requires the caller's stored admin flag, not the one
// baked into the token: revoking admin takes effect on the next request,
// not at token expiry.
func adminMiddleware(svc *tutor.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			t, err := getContextTutor(ctx, svc)
			if err != nil {
				return err
			}
			if t.IsAdmin {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
