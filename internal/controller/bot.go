// Package controller wires the intent handlers onto the Telegram bot.
package controller

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/controller/callbacks"
	"github.com/collegepyq/pyq-bot/internal/controller/handlers"
	"github.com/collegepyq/pyq-bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

// NewBotController builds the bot and its handlers. Free text goes
// through the default handler so exact command matches always win.
func NewBotController(
	token string,
	lookup *service.LookupService,
	states *service.StateService,
	donationQRPath string,
	logger *zap.Logger,
) (*BotController, error) {
	c := &BotController{
		handlers:        handlers.NewHandlers(lookup, states, donationQRPath, logger),
		callbackHandler: callbacks.NewHandler(lookup, states, logger),
		logger:          logger,
	}

	b, err := bot.New(token, bot.WithDefaultHandler(c.handleDefault))
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	c.bot = b

	return c, nil
}

// Bot exposes the underlying bot for webhook serving.
func (c *BotController) Bot() *bot.Bot {
	return c.bot
}

// RegisterHandlers attaches command and callback handlers and sets the
// bot command menu.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/donate", bot.MatchTypeExact, c.handlers.HandleDonate)

	// Inline keyboard presses.
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Select your year and branch"},
		{Command: "help", Description: "❓ How to use the bot"},
		{Command: "donate", Description: "❤️ Support the project"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context is cancelled.
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}

// handleDefault catches every update no registered handler matched.
// Plain text is treated as a subject code; everything else gets a
// "not understood" reply rather than being dropped silently.
func (c *BotController) handleDefault(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message != nil && update.Message.Text != "" {
		c.handlers.HandleTextMessage(ctx, b, update)
		return
	}
	c.handlers.HandleUnrecognized(ctx, b, update)
}
