package echoapi

import "github.com/creativedak/tutor1/core"

// LoginRequest carries the form-encoded credentials posted to /api/token.
// The username field holds the tutor's email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Username = core.CleanString(r.Username, true /* lower */)
	return core.Validate.Struct(r)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// StatusResponse acknowledges a delete.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse(msg string) StatusResponse {
	return StatusResponse{Status: "success", Message: msg}
}
