package digest

import (
	"regexp"
	"strconv"
	"strings"
)

// SnippetLength caps the full-text section of the plain-text report, in
// characters.
const SnippetLength = 4000

// FormatPlainText renders an analysis as the plain-text report used for
// terminal output and PDF export.
func FormatPlainText(a *Analysis) string {
	var sb strings.Builder

	title := a.Title
	if strings.TrimSpace(title) == "" {
		title = "No title"
	}
	sb.WriteString(title + "\n")
	sb.WriteString("URL: " + a.URL + "\n\n")

	sb.WriteString("---- Summary ----\n")
	if len(a.Summary) == 0 {
		sb.WriteString("(no summary)\n")
	}
	for _, s := range a.Summary {
		sb.WriteString("• " + s + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("---- Key ideas ----\n")
	if len(a.KeyIdeas) == 0 {
		sb.WriteString("(none)\n")
	}
	for i, idea := range a.KeyIdeas {
		sb.WriteString(strconv.Itoa(i+1) + ". " + idea + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("---- Action items ----\n")
	if len(a.ActionItems) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, item := range a.ActionItems {
		sb.WriteString("[ ] " + item + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("---- Full text (snippet) ----\n")
	if strings.TrimSpace(a.Text) == "" {
		sb.WriteString("(no text)\n")
	} else {
		sb.WriteString(snippet(a.Text, SnippetLength) + "\n")
	}

	return sb.String()
}

// FormatMarkdown renders an analysis as a short chat-style digest. Empty
// sections are omitted.
func FormatMarkdown(a *Analysis) string {
	var sb strings.Builder
	sb.WriteString("*" + a.Title + "*\n\n")

	if len(a.Summary) > 0 {
		sb.WriteString("*Summary:*\n")
		for _, s := range a.Summary {
			sb.WriteString("- " + s + "\n")
		}
		sb.WriteString("\n")
	}

	if len(a.KeyIdeas) > 0 {
		sb.WriteString("*Key Ideas:*\n")
		for i, idea := range a.KeyIdeas {
			sb.WriteString(strconv.Itoa(i+1) + ". " + idea + "\n")
		}
		sb.WriteString("\n")
	}

	if len(a.ActionItems) > 0 {
		sb.WriteString("*Action Items:*\n")
		for _, item := range a.ActionItems {
			sb.WriteString("- [ ] " + item + "\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

func snippet(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var (
	unsafeFileRe = regexp.MustCompile(`[\\/:*?"<>|]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// maxFileNameLength caps SanitizeFileName output, in characters.
const maxFileNameLength = 120

// SanitizeFileName turns a title into a name safe for the common
// filesystems. Blank titles become "article".
func SanitizeFileName(title string) string {
	if strings.TrimSpace(title) == "" {
		return "article"
	}
	s := unsafeFileRe.ReplaceAllString(title, "_")
	s = spaceRunRe.ReplaceAllString(s, "_")
	r := []rune(s)
	if len(r) > maxFileNameLength {
		s = string(r[:maxFileNameLength])
	}
	return s
}
