package sanitize

import "strings"

// EscapeHTML replaces the five HTML metacharacters with their entities.
// Ampersand goes first so the entities inserted by the later passes are not
// escaped again. Running it twice double-escapes; each submission is
// sanitized exactly once, right before email composition.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	text = strings.ReplaceAll(text, "'", "&#039;")
	return text
}

// EscapeMessage escapes text and then converts literal newlines to <br>, so
// the message keeps its line structure when rendered in an HTML email. The
// newline conversion runs after escaping; the inserted <br> tags are the only
// markup that survives.
func EscapeMessage(text string) string {
	return strings.ReplaceAll(EscapeHTML(text), "\n", "<br>")
}
