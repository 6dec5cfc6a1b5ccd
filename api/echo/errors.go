package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "tutor not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusUnauthorized, "incorrect email or password")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch cause := errors.Cause(err); cause {
		case tutor.ErrNotFound, student.ErrNotFound, lesson.ErrNotFound:
			// absent and not-owned-by-caller fail identically
			code = http.StatusNotFound
			message = cause.Error()
		default:
			switch origErr := cause.(type) {
			case *echo.HTTPError:
				if origErr == middleware.ErrJWTMissing {
					code = http.StatusUnauthorized
					message = origErr.Message
					break
				}
				if origErr.Internal != nil {
					if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
						origErr = herr
					}
				}
				code = origErr.Code
				message = origErr.Message
			case validator.ValidationErrors:
				fldErrs := make(map[string]string, len(origErr))
				for _, vErr := range origErr {
					fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
				}
				code = http.StatusBadRequest
				message = fldErrs
			case *core.ValidationError:
				if origErr.Fields != nil {
					fldErrs := make(map[string]string, len(origErr.Fields))
					for _, fErr := range origErr.Fields {
						fldErrs[fErr.Field] = fErr.Error
					}
					message = fldErrs
				} else {
					message = origErr.Error()
				}
				code = http.StatusBadRequest
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				var t tutor.Tutor
				if claims, cErr := getContextClaims(ctx); cErr == nil {
					t.Email = claims.Subject
					t.Name = claims.Name
				}
				logger.Error(msg, errors.Wrap(err, msg), t)

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
