// Package callbacks routes inline-keyboard callback queries to the year
// and branch selection handlers.
package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/controller/format"
	"github.com/collegepyq/pyq-bot/internal/controller/keyboard"
	"github.com/collegepyq/pyq-bot/internal/service"
)

type Handler struct {
	lookup *service.LookupService
	states *service.StateService
	logger *zap.Logger
}

func NewHandler(
	lookup *service.LookupService,
	states *service.StateService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		lookup: lookup,
		states: states,
		logger: logger,
	}
}

// HandleCallbackQuery routes callback data by shape: "year:<n>",
// "y<n>:branch:<code>" or "back_to_years". Anything else is answered
// with an alert so the button never spins forever.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	case strings.HasPrefix(data, keyboard.YearPrefix):
		h.handleYearSelection(ctx, b, callback)
	case isBranchData(data):
		h.handleBranchSelection(ctx, b, callback)
	case data == keyboard.BackToYears:
		h.handleBackToYears(ctx, b, callback)
	default:
		h.logger.Warn("Unrecognized callback data", zap.String("data", data))
		answerAlert(ctx, b, callback.ID, format.NotUnderstood)
	}
}

func isBranchData(data string) bool {
	return strings.HasPrefix(data, "y") && strings.Contains(data, ":branch:")
}
