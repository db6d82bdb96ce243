package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/boterr"
	"github.com/collegepyq/pyq-bot/internal/controller/format"
	"github.com/collegepyq/pyq-bot/internal/model"
)

// HandleTextMessage treats any non-command text as a subject code and
// looks it up in the current index.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Known commands have their own registered handlers, so a leading
	// slash here is a command we do not know.
	if strings.HasPrefix(update.Message.Text, "/") {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   format.NotUnderstood,
		})
		return
	}

	chatID := update.Message.Chat.ID
	code := model.NormalizeCode(update.Message.Text)

	subject, err := h.lookup.Subject(ctx, code)
	switch {
	case errors.Is(err, boterr.ErrNotFound):
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      format.UnknownCode,
			ParseMode: models.ParseModeMarkdown,
		})
		return
	case err != nil:
		h.logger.Error("Subject lookup failed",
			zap.Int64("chat_id", chatID),
			zap.String("code", code),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   format.TryAgainLater,
		})
		return
	}

	text := format.Subject(subject)

	// Note the origin when the code lies outside the stored selection.
	state := h.states.Get(ctx, chatID)
	if state.HasSelection() && (subject.Year != state.LastYear || subject.Branch != state.LastBranch) {
		text = format.SubjectWithOrigin(subject)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
}

// HandleUnrecognized replies to updates no handler matched. Updates
// without a reachable chat are dropped, there is nowhere to answer.
func (h *Handlers) HandleUnrecognized(ctx context.Context, b *bot.Bot, update *models.Update) {
	switch {
	case update.Message != nil:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   format.NotUnderstood,
		})
	case update.CallbackQuery != nil:
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            format.NotUnderstood,
			ShowAlert:       true,
		})
	}
}
