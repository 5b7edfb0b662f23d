package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/245124737105-sketch/PolyglotPal/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return service.DefaultHistoryLimit
	}
	return limit
}

// bindJSON treats an empty body as an empty request.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("malformed request body: %w", common.ErrValidation)
	}
	return nil
}

func (h *Handler) stats(c *gin.Context) {
	user := currentUser(c)

	stats, err := h.service.GetStats(c.Request.Context(), user.ID)
	if err != nil {
		h.errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// translations and quizResults answer with an empty list when the store fails.
func (h *Handler) translations(c *gin.Context) {
	user := currentUser(c)

	records, err := h.service.UserTranslations(c.Request.Context(), user.ID, limitParam(c))
	if err != nil {
		h.log.Error("failed to load translation history", zap.String("user_id", user.ID), zap.Error(err))
		records = []models.TranslationRecord{}
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) quizResults(c *gin.Context) {
	user := currentUser(c)

	results, err := h.service.UserResults(c.Request.Context(), user.ID, limitParam(c))
	if err != nil {
		h.log.Error("failed to load quiz results", zap.String("user_id", user.ID), zap.Error(err))
		results = []models.QuizResult{}
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) languageProgress(c *gin.Context) {
	user := currentUser(c)

	progress, err := h.service.AllProgress(c.Request.Context(), user.ID)
	if err != nil {
		h.errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *Handler) translate(c *gin.Context) {
	var req models.TranslateRequest
	if err := bindJSON(c, &req); err != nil {
		h.errorJSON(c, err)
		return
	}

	result, err := h.service.Translate(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) quiz(c *gin.Context) {
	var req models.QuizRequest
	if err := bindJSON(c, &req); err != nil {
		h.errorJSON(c, err)
		return
	}

	question, err := h.service.Generate(c.Request.Context(), req.Target)
	if err != nil {
		h.errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *Handler) submitQuiz(c *gin.Context) {
	var sub models.QuizSubmission
	if err := bindJSON(c, &sub); err != nil {
		h.errorJSON(c, err)
		return
	}

	points, err := h.service.Submit(c.Request.Context(), currentUser(c).ID, sub)
	if err != nil {
		h.errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{Success: true, PointsEarned: points})
}
