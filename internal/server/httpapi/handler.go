package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndmitriev/authcore/internal/common"
	"github.com/ndmitriev/authcore/internal/server/users"
)

// Opaque error codes returned to clients. Internal details stay in the
// server log.
const (
	codeValidation         = "validation_error"
	codeDuplicateAccount   = "duplicate_account"
	codeInvalidCredentials = "invalid_credentials"
	codeUnauthorized       = "unauthorized"
	codeNotFound           = "not_found"
	codeInternal           = "internal_error"
)

// sessionCookieName is the cookie carrying the session token. The token is
// also returned in the login response body so bearer-token clients can use
// it directly.
const sessionCookieName = "token"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNum string `json:"phoneNum"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userProjection is the reduced view of an account returned to clients.
// Email, password hash, and verification token never leave the server.
type userProjection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    *userProjection `json:"user,omitempty"`
}

func projectUser(u *users.User) *userProjection {
	return &userProjection{ID: u.ID, Name: u.Name, Role: u.Role}
}

func fail(c *gin.Context, status int, message, code string) {
	c.JSON(status, response{Success: false, Message: message, Code: code})
}

func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, response{Success: true, Message: "test route checked"})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required", codeValidation)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.PhoneNum)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			fail(c, http.StatusBadRequest, "All fields are required", codeValidation)
		case errors.Is(err, common.ErrorAlreadyExists):
			fail(c, http.StatusBadRequest, "user already exists", codeDuplicateAccount)
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
			fail(c, http.StatusInternalServerError, "Registration Failed", codeInternal)
		}
		return
	}

	c.JSON(http.StatusCreated, response{
		Success: true,
		Message: "user registered successfully",
		User:    projectUser(user),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required", codeValidation)
		return
	}

	result, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			fail(c, http.StatusBadRequest, "All fields are required", codeValidation)
		case errors.Is(err, common.ErrorInvalidCredentials):
			// same message for unknown email and wrong password
			fail(c, http.StatusBadRequest, "invalid email or password", codeInvalidCredentials)
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
			fail(c, http.StatusInternalServerError, "Login Process Failed", codeInternal)
		}
		return
	}

	c.SetCookie(sessionCookieName, result.Token, int(s.tokenValidity.Seconds()), "/", "", true, true)

	c.JSON(http.StatusCreated, response{
		Success: true,
		Message: "user logged in successfully",
		Token:   result.Token,
		User:    projectUser(result.User),
	})
}

func (s *Server) handleMe(c *gin.Context) {
	userID := c.GetString(ctxUserIDKey)

	user, err := s.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fail(c, http.StatusNotFound, "user not found", codeNotFound)
			return
		}
		s.logger.Error(c.Request.Context(), "profile lookup failed", "error", err.Error())
		fail(c, http.StatusInternalServerError, "Profile Lookup Failed", codeInternal)
		return
	}

	c.JSON(http.StatusOK, response{
		Success: true,
		Message: "user profile",
		User:    projectUser(user),
	})
}
