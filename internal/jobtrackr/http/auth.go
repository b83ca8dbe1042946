package http

import (
	"net/http"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/service"
	"github.com/aussiebroadwan/jobtrackr/pkg/httpx"
	"github.com/aussiebroadwan/jobtrackr/pkg/jobsdk"
)

// AuthHandler handles registration, login and the profile endpoint.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an account and returns a bearer token valid for 7 days.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		jobsdk.RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	jobsdk.AuthResponse		"_id, name, email, token"
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Missing fields or email already registered"
//	@Failure		429		{object}	jobsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	jobsdk.ErrorResponse	"Server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req jobsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, jobsdk.AuthResponse{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Token: res.Token,
	})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		jobsdk.LoginRequest		true	"email, password"
//	@Success		200		{object}	jobsdk.AuthResponse		"_id, name, email, token"
//	@Failure		400		{object}	jobsdk.ErrorResponse	"Missing fields"
//	@Failure		401		{object}	jobsdk.ErrorResponse	"Invalid credentials"
//	@Failure		404		{object}	jobsdk.ErrorResponse	"User not found"
//	@Failure		429		{object}	jobsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req jobsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, jobsdk.AuthResponse{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Token: res.Token,
	})
}

// HandleProfile handles GET /api/auth/profile
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	jobsdk.ProfileResponse
//	@Failure		401	{object}	jobsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	jobsdk.ErrorResponse	"User no longer exists"
//	@Router			/api/auth/profile [get].
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.GetProfile(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}
