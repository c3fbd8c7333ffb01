package handler

import (
	"net/http"

	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	"github.com/DanRulev/kotoba.git/internal/response"
	"github.com/DanRulev/kotoba.git/pkg/validator"
	"github.com/gin-gonic/gin"
)

type QuizHandler struct{}

func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

// apply runs op on the caller's quiz engine. op reports whether the action
// took effect; the snapshot is returned either way.
func (h *QuizHandler) apply(c *gin.Context, op func(e *quiz.Engine) bool) (quiz.Snapshot, bool, bool) {
	var (
		snap quiz.Snapshot
		ok   = true
	)
	if !withHost(c, func(hs *host.Host) {
		hs.SetMode(host.ModeQuiz)
		engine := hs.Quiz()
		if op != nil {
			ok = op(engine)
		}
		snap = engine.Snapshot()
	}) {
		return quiz.Snapshot{}, false, false
	}
	return snap, ok, true
}

func (h *QuizHandler) reply(c *gin.Context, op func(e *quiz.Engine) bool) {
	snap, _, found := h.apply(c, op)
	if !found {
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// GetQuiz godoc
// GET /api/v1/quiz
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	h.reply(c, nil)
}

// Choose godoc
// POST /api/v1/quiz/choose
func (h *QuizHandler) Choose(c *gin.Context) {
	var req models.ChooseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	h.reply(c, func(e *quiz.Engine) bool {
		e.Choose(*req.Choice)
		return true
	})
}

// Retry godoc
// POST /api/v1/quiz/retry
func (h *QuizHandler) Retry(c *gin.Context) {
	h.reply(c, (*quiz.Engine).TryAgain)
}

// Next godoc
// POST /api/v1/quiz/next
// On the last question this starts a new game.
func (h *QuizHandler) Next(c *gin.Context) {
	h.reply(c, func(e *quiz.Engine) bool {
		if !e.Advance() {
			e.Reset()
		}
		return true
	})
}

// Reset godoc
// POST /api/v1/quiz/reset
func (h *QuizHandler) Reset(c *gin.Context) {
	h.reply(c, func(e *quiz.Engine) bool {
		e.Reset()
		return true
	})
}

// Review godoc
// POST /api/v1/quiz/review
func (h *QuizHandler) Review(c *gin.Context) {
	snap, entered, found := h.apply(c, (*quiz.Engine).EnterReview)
	if !found {
		return
	}
	if !entered {
		response.Fail(c, http.StatusConflict, response.ErrNothingToReview)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// ExitReview godoc
// POST /api/v1/quiz/exit-review
func (h *QuizHandler) ExitReview(c *gin.Context) {
	h.reply(c, func(e *quiz.Engine) bool {
		e.ExitReview()
		return true
	})
}
