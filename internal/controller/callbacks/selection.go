package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/controller/format"
	"github.com/collegepyq/pyq-bot/internal/controller/keyboard"
	"github.com/collegepyq/pyq-bot/internal/model"
)

// handleYearSelection stores the chosen year. First year has a common
// subject set, so it goes straight to the list; other years show the
// branch keyboard.
func (h *Handler) handleYearSelection(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	answer(ctx, b, callback.ID)

	msg := message(callback)
	if msg == nil {
		return
	}

	year, err := parseYearData(callback.Data)
	if err != nil {
		h.logger.Error("Failed to parse year callback",
			zap.String("data", callback.Data),
			zap.Error(err))
		return
	}

	chatID := msg.Chat.ID
	h.states.SetYear(ctx, chatID, year)

	if year == model.YearFirst {
		h.showSubjectList(ctx, b, msg, year, model.BranchCommon)
		return
	}

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   msg.ID,
		Text:        fmt.Sprintf("🎓 You selected %s. Please select your branch:", year.Label()),
		ReplyMarkup: keyboard.Branches(year),
	})
}

// handleBranchSelection stores the chosen branch and shows its subjects.
func (h *Handler) handleBranchSelection(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	answer(ctx, b, callback.ID)

	msg := message(callback)
	if msg == nil {
		return
	}

	year, branch, err := parseBranchData(callback.Data)
	if err != nil {
		h.logger.Error("Failed to parse branch callback",
			zap.String("data", callback.Data),
			zap.Error(err))
		return
	}

	h.states.SetBranch(ctx, msg.Chat.ID, year, branch)
	h.showSubjectList(ctx, b, msg, year, branch)
}

// handleBackToYears clears the selection and shows the year keyboard
// again.
func (h *Handler) handleBackToYears(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	answer(ctx, b, callback.ID)

	msg := message(callback)
	if msg == nil {
		return
	}

	h.states.ClearSelection(ctx, msg.Chat.ID)

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        format.SelectYear,
		ReplyMarkup: keyboard.Years(),
	})
}

func (h *Handler) showSubjectList(ctx context.Context, b *bot.Bot, msg *models.Message, year model.Year, branch model.Branch) {
	subjects, err := h.lookup.SubjectsFor(ctx, year, branch)
	if err != nil {
		h.logger.Error("Failed to load subject list",
			zap.Int("year", int(year)),
			zap.String("branch", string(branch)),
			zap.Error(err))
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Text:      format.TryAgainLater,
		})
		return
	}

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      format.SubjectList(year, branch, subjects),
		ParseMode: models.ParseModeMarkdown,
	})
}
