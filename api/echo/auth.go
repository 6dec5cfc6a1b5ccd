package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/tutor"
)

var (
	// appJWTConfig is the default JWT auth middleware config.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "tutorToken",
		Claims:        new(Claims),
	}
	contextTutorKey = "tutor"
)

// Claims represents the authorization claims transmitted via a JWT.
// Subject carries the tutor's email.
type Claims struct {
	jwt.StandardClaims
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

func GetTutorClaims(t tutor.Tutor) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   t.Email,
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:    t.Name,
		IsAdmin: t.IsAdmin,
	}
}

// authenticate checks a tutor's credentials; unknown email and bad
// password fail identically.
func authenticate(ctx echo.Context, email, pwd string, svc *tutor.Service) (*Claims, error) {
	t, err := svc.GetByEmail(ctx.Request().Context(), email)
	if err != nil {
		if errors.Cause(err) == tutor.ErrNotFound {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "finding tutor by email")
	}
	if err = t.CheckPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	return GetTutorClaims(t), nil
}

// GenerateToken generates a signed JWT token string representing the tutor Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextTutor resolves the caller's tutor record from the token
// subject. A valid token whose subject no longer exists is unauthorized.
func getContextTutor(ctx echo.Context, svc *tutor.Service) (tutor.Tutor, error) {
	if t, ok := ctx.Get(contextTutorKey).(tutor.Tutor); ok {
		return t, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return tutor.Tutor{}, err
	}

	t, err := svc.GetByEmail(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Cause(err) == tutor.ErrNotFound {
			return tutor.Tutor{}, errUnauthorized
		}
		return tutor.Tutor{}, errors.Wrap(err, "finding tutor by email")
	}
	ctx.Set(contextTutorKey, t)
	return t, nil
}
