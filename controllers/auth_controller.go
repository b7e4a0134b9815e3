package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/middlewares"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *storage.UserStore
}

func NewAuthController(users *storage.UserStore) *AuthController {
	return &AuthController{Users: users}
}

// Flash messages travel as query parameters; the form templates render them.
func redirectWithFlash(c *gin.Context, path, kind, msg string) {
	c.Redirect(http.StatusFound, path+"?"+kind+"="+url.QueryEscape(msg))
}

// GET /register
func (a *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"error": c.Query("error"),
		"msg":   c.Query("msg"),
	})
}

// POST /register (form)
func (a *AuthController) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		redirectWithFlash(c, "/register", "error", "Email and password are required.")
		return
	}

	if err := services.RegisterUser(a.Users, email, password); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			redirectWithFlash(c, "/login", "error", "Email already registered. Please log in.")
			return
		}
		redirectWithFlash(c, "/register", "error", "Registration failed. Please try again.")
		return
	}

	redirectWithFlash(c, "/login", "msg", "Registration successful! Please login.")
}

// GET /login
func (a *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"error": c.Query("error"),
		"msg":   c.Query("msg"),
	})
}

// POST /login (form)
func (a *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := services.AuthenticateUser(a.Users, email, password)
	if err != nil {
		redirectWithFlash(c, "/login", "error", "Invalid email or password")
		return
	}

	// Session cookie mirrors the token lifetime (72h), HTTP-only.
	c.SetCookie(middlewares.SessionCookie, token, 72*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/map")
}

// GET /check_auth — public; reports whether the request carries a valid
// session.
func (a *AuthController) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": c.GetString("email") != ""})
}
