package format

// Plain-text replies (no parse mode).
const (
	Welcome = "🎓 Welcome to the PYQ Bot! Please select your year:"

	SelectYear = "🎓 Please select your year:"

	TryAgainLater = "Something went wrong while loading subject data. Please try again later."

	NotUnderstood = "Sorry, I didn't understand that. Use /start to pick your year and branch, or /help for instructions."

	DonationCaption = "❤️ Thank you for supporting us! Scan this QR code to donate.\n\n" +
		"Created with ♥ by someone like you"

	DonationFallback = "❤️ Thank you for your interest in supporting us! " +
		"Please contact the administrator for donation details.\n\n" +
		"Created with ♥ by someone like you"
)

// MarkdownV2 replies. Special characters are pre-escaped by hand here,
// so keep edits in sync with the MarkdownV2 rules.
const (
	Help = "*📚 PYQ Bot Help*\n\n" +
		"• 🚀 Use /start to select your year and branch\n" +
		"• 📝 Copy a subject code \\(e\\.g\\. 23BS1001\\) and send it to receive the drive folder link\n" +
		"• ❤️ Use /donate to support us\n\n" +
		"_Need more help? Contact the administrator\\._"

	UnknownCode = "❌ Unknown code\\. Use /start to view the subject list and copy a valid subject code\\."
)
