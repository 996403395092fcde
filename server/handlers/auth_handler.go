package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpilot-backend/server/flash"
	"jobpilot-backend/shared/database"
	"jobpilot-backend/shared/session"
	utils "jobpilot-backend/shared/utils/auth"
)

type AuthHandler struct {
	credentials CredentialStore
	sessions    session.Manager
}

func NewAuthHandler(credentials CredentialStore, sessions session.Manager) *AuthHandler {
	return &AuthHandler{credentials: credentials, sessions: sessions}
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	FullName string `form:"fullName"`
	Mobile   string `form:"mobile"`
	OrgEmail string `form:"orgEmail"`
	Gender   string `form:"gender"`
	Password string `form:"password"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	OrgEmail string `form:"orgEmail"`
	Password string `form:"password"`
}

// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", flash.PageData(c))
}

// GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", flash.PageData(c))
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.Error, "Error registering user")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := utils.ValidateRequired(req.FullName, "full name"); err != nil {
		flash.Set(c, flash.Error, err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if err := utils.ValidateEmail(req.OrgEmail); err != nil {
		flash.Set(c, flash.Error, err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if err := utils.ValidateRequired(req.Password, "password"); err != nil {
		flash.Set(c, flash.Error, err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	}

	_, err := h.credentials.Register(c.Request.Context(), database.RegisterInput{
		FullName: req.FullName,
		Mobile:   req.Mobile,
		OrgEmail: req.OrgEmail,
		Gender:   req.Gender,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			flash.Set(c, flash.Error, "Email already registered")
		} else {
			log.Printf("❌ Registration failed: %v", err)
			flash.Set(c, flash.Error, "Error registering user")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Set(c, flash.Success, "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.Error, "Invalid login request")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.credentials.Verify(c.Request.Context(), req.OrgEmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUserNotFound):
			flash.Set(c, flash.Error, "Incorrect email")
		case errors.Is(err, database.ErrBadCredential):
			flash.Set(c, flash.Error, "Incorrect password")
		default:
			log.Printf("❌ Login failed: %v", err)
			flash.Set(c, flash.Error, "Login failed. Please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Could not create session: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	flash.Set(c, flash.Success, "Logged in successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err == nil {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			log.Printf("❌ Could not destroy session: %v", err)
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	flash.Set(c, flash.Success, "Logged out successfully")
	c.Redirect(http.StatusFound, "/login")
}
