package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/245124737105-sketch/PolyglotPal/internal/service"
	"github.com/245124737105-sketch/PolyglotPal/internal/vocab"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const loginFailedMessage = "Please check your login details and try again."

func (h *Handler) index(c *gin.Context) {
	if currentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Welcome"})
}

func (h *Handler) signUpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Title": "Sign up", "Name": "", "Email": ""})
}

func (h *Handler) signUp(c *gin.Context) {
	var (
		form models.SignUpForm
		user models.User
		err  error
	)
	if err = c.ShouldBind(&form); err != nil {
		h.log.Debug("malformed sign up form", zap.Error(err))
		err = fmt.Errorf("malformed sign up form: %w", common.ErrValidation)
	} else {
		user, err = h.service.SignUp(c.Request.Context(), form)
	}
	if err != nil {
		status := statusOf(err)
		msg := "Something went wrong, please try again."
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			msg = "Email address already exists."
		case errors.Is(err, common.ErrValidation):
			msg = "Please provide a name, a valid email and a password of at least 6 characters."
		default:
			h.log.Error("sign up failed", zap.Error(err))
		}

		c.HTML(status, "signup.html", gin.H{"Title": "Sign up", "Error": msg, "Name": form.Username, "Email": form.Email})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.log.Error("failed to start session", zap.String("user_id", user.ID), zap.Error(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) loginPage(c *gin.Context) {
	if currentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Log in", "Email": ""})
}

func (h *Handler) login(c *gin.Context) {
	var (
		form models.LoginForm
		user models.User
		err  error
	)
	if err = c.ShouldBind(&form); err != nil {
		h.log.Debug("malformed login form", zap.Error(err))
		err = fmt.Errorf("malformed login form: %w", common.ErrValidation)
	} else {
		user, err = h.service.Login(c.Request.Context(), form)
	}
	if err != nil {
		status := statusOf(err)
		msg := loginFailedMessage
		if status == http.StatusInternalServerError {
			h.log.Error("login failed", zap.Error(err))
			msg = "Something went wrong, please try again."
		}

		c.HTML(status, "login.html", gin.H{"Title": "Log in", "Error": msg, "Email": form.Email})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.log.Error("failed to start session", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Title": "Log in", "Error": "Something went wrong, please try again.", "Email": form.Email})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// dashboard never fails on storage errors: the name falls back to the session
// and the counters to zero.
func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	session := currentUser(c)

	name := session.Username
	if user, err := h.service.UserByID(ctx, session.ID); err == nil {
		name = user.Username
	} else {
		h.log.Warn("failed to load user", zap.String("user_id", session.ID), zap.Error(err))
	}

	stats, err := h.service.GetStats(ctx, session.ID)
	if err != nil {
		h.log.Error("failed to load stats", zap.String("user_id", session.ID), zap.Error(err))
		stats = models.UserStats{UserID: session.ID}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"User":      session,
		"Name":      name,
		"Date":      time.Now().Format("Monday, January 2, 2006"),
		"Stats":     stats,
		"Languages": vocab.Languages(),
	})
}

func (h *Handler) translatePage(c *gin.Context) {
	c.HTML(http.StatusOK, "translate.html", gin.H{
		"Title":     "Translate",
		"User":      currentUser(c),
		"Languages": vocab.Languages(),
	})
}

func (h *Handler) quizPage(c *gin.Context) {
	c.HTML(http.StatusOK, "quiz.html", gin.H{
		"Title":     "Quiz",
		"User":      currentUser(c),
		"Languages": vocab.Languages(),
		"Default":   service.DefaultQuizTarget,
	})
}
