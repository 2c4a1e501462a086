package api

import (
	"context"
	"net/http"

	"github.com/parvecare/storefront/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup registers a new account. It does not establish a session; the
// caller logs in separately.
func (c *Client) Signup(ctx context.Context, req model.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil, false)
}

// Login exchanges credentials for a session token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	var res model.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res, false); err != nil {
		return model.LoginResult{}, err
	}
	return res, nil
}

// ForgotPassword asks the backend to email a one-time reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", forgotPasswordRequest{Email: email}, nil, false)
}

// VerifyOTP checks the emailed reset code before a new password is set.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-otp", verifyOTPRequest{Email: email, OTP: otp}, nil, false)
}

// ResetPassword sets a new password using a verified reset code. The caller
// confirms the password before calling; both fields carry the same value.
func (c *Client) ResetPassword(ctx context.Context, email, otp, password string) error {
	req := resetPasswordRequest{Email: email, OTP: otp, Password: password, ConfirmPassword: password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", req, nil, false)
}
