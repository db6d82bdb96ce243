package handlers

import (
	"bytes"
	"context"
	"os"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/controller/format"
	"github.com/collegepyq/pyq-bot/internal/controller/keyboard"
)

// HandleStart resets any stored selection and shows the year keyboard.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.states.ClearSelection(ctx, chatID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        format.Welcome,
		ReplyMarkup: keyboard.Years(),
	})
}

// HandleHelp sends the static usage text.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      format.Help,
		ParseMode: models.ParseModeMarkdown,
	})
}

// HandleDonate sends the payment QR image, or a text fallback when the
// asset is missing, and records the donation acknowledgement.
func (h *Handlers) HandleDonate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.states.MarkDonated(ctx, chatID)

	qr, err := os.ReadFile(h.qrPath)
	if err != nil {
		h.logger.Warn("Donation QR asset not readable, sending text fallback",
			zap.String("path", h.qrPath),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   format.DonationFallback,
		})
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "qr.png", Data: bytes.NewReader(qr)},
		Caption: format.DonationCaption,
	})
}
