package callbacks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// answer acknowledges a callback query so the client stops the spinner.
func answer(ctx context.Context, b *bot.Bot, callbackID string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
}

// answerAlert acknowledges a callback query with a popup message.
func answerAlert(ctx context.Context, b *bot.Bot, callbackID, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// message extracts the accessible message a callback originated from.
func message(callback *models.CallbackQuery) *models.Message {
	return callback.Message.Message
}

// parseYearData parses "year:<n>".
func parseYearData(data string) (model.Year, error) {
	rest, ok := strings.CutPrefix(data, "year:")
	if !ok {
		return 0, fmt.Errorf("not year callback data: %q", data)
	}
	return model.ParseYear(rest)
}

// parseBranchData parses "y<n>:branch:<code>".
func parseBranchData(data string) (model.Year, model.Branch, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[1] != "branch" || !strings.HasPrefix(parts[0], "y") {
		return 0, "", fmt.Errorf("invalid branch callback data: %q", data)
	}

	year, err := model.ParseYear(strings.TrimPrefix(parts[0], "y"))
	if err != nil {
		return 0, "", err
	}

	branch := model.ParseBranch(parts[2])
	return year, branch, nil
}
