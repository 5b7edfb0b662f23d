package handler

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mock/mock.go

//go:embed templates/*.html
var templatesFS embed.FS

type AuthSI interface {
	SignUp(ctx context.Context, form models.SignUpForm) (models.User, error)
	Login(ctx context.Context, form models.LoginForm) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
}

type StatsSI interface {
	GetStats(ctx context.Context, userID string) (models.UserStats, error)
	UserTranslations(ctx context.Context, userID string, limit int) ([]models.TranslationRecord, error)
	UserResults(ctx context.Context, userID string, limit int) ([]models.QuizResult, error)
	AllProgress(ctx context.Context, userID string) (map[string]models.LanguageProgress, error)
}

type QuizSI interface {
	Generate(ctx context.Context, target string) (models.QuizQuestion, error)
	Submit(ctx context.Context, userID string, sub models.QuizSubmission) (int, error)
}

type TranslateSI interface {
	Translate(ctx context.Context, user *models.SessionUser, req models.TranslateRequest) (models.TranslateResult, error)
}

type ServiceI interface {
	AuthSI
	StatsSI
	QuizSI
	TranslateSI
}

type SessionI interface {
	GenerateToken(user models.SessionUser) (string, error)
	ParseToken(token string) (models.SessionUser, error)
	TTL() time.Duration
}

type Handler struct {
	service  ServiceI
	sessions SessionI
	cookie   config.AuthConfig
	log      *zap.Logger
}

func NewHandler(service ServiceI, sessions SessionI, cookie config.AuthConfig, log *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		cookie:   cookie,
		log:      log,
	}
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// InitRoutes builds the gin engine with every page and API route.
func (h *Handler) InitRoutes() (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), RequestLogger(h.log), h.session())

	r.GET("/healthz", h.healthz)

	r.GET("/", h.index)
	r.GET("/signup", h.signUpPage)
	r.POST("/signup", h.signUp)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)

	pages := r.Group("/", h.requirePage())
	{
		pages.GET("/logout", h.logout)
		pages.GET("/dashboard", h.dashboard)
		pages.GET("/translate", h.translatePage)
		pages.GET("/quiz", h.quizPage)
	}

	api := r.Group("/api")
	{
		api.POST("/translate", h.translate)

		user := api.Group("/", h.requireAPI())
		user.GET("/user/stats", h.stats)
		user.GET("/user/translations", h.translations)
		user.GET("/translation/history", h.translations)
		user.GET("/user/quiz-results", h.quizResults)
		user.GET("/user/language-progress", h.languageProgress)
		user.POST("/quiz", h.quiz)
		user.POST("/quiz/submit", h.submitQuiz)
	}

	return r, nil
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusOf maps error kinds onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *Handler) errorJSON(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()

	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		if !errors.Is(err, common.ErrUpstream) {
			msg = common.ErrInternal.Error()
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
