// Package format renders MarkdownV2 reply texts.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-telegram/bot"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// SubjectList renders the subject screen for a year/branch selection:
// monospace codes (tap to copy) with italic names, sorted by code.
func SubjectList(year model.Year, branch model.Branch, subjects []model.Subject) string {
	header := strings.ToUpper(year.Label())
	if branch != model.BranchCommon {
		header += " " + string(branch)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 *%s*\n\n", bot.EscapeMarkdown(header))

	if len(subjects) == 0 {
		b.WriteString(bot.EscapeMarkdown("No subjects available for this selection yet. Please try another branch or check back later."))
		return b.String()
	}

	sorted := make([]model.Subject, len(subjects))
	copy(sorted, subjects)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	for _, s := range sorted {
		fmt.Fprintf(&b, "`%s` _%s_\n", bot.EscapeMarkdown(s.Code), bot.EscapeMarkdown(s.Name))
	}

	b.WriteString("\n📝 ")
	b.WriteString(bot.EscapeMarkdown("Tap a subject code above to copy it, then send only the code here to receive the link."))
	b.WriteString("\n🔍 _")
	b.WriteString(bot.EscapeMarkdown("For instructions /help\n♥️ Help us grow /donate\nCreated with ♥️ by someone like you"))
	b.WriteString("_")

	return b.String()
}

// Subject renders the reply for a found subject code.
func Subject(s model.Subject) string {
	return fmt.Sprintf("📘 *%s*: %s\n\n🔗 %s",
		bot.EscapeMarkdown(s.Code),
		bot.EscapeMarkdown(s.Name),
		bot.EscapeMarkdown(s.DriveLink))
}

// SubjectWithOrigin is Subject plus a note naming the year/branch the
// record belongs to. Used when the code lies outside the user's stored
// selection.
func SubjectWithOrigin(s model.Subject) string {
	origin := s.Year.Label()
	if s.Branch != model.BranchCommon {
		origin += " " + string(s.Branch)
	}
	return fmt.Sprintf("%s\n\n📌 _%s_",
		Subject(s),
		bot.EscapeMarkdown("Note: this subject is from "+origin))
}
