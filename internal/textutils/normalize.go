package textutils

import (
	"regexp"
	"strings"
)

// headerLineCount is how many leading lines count as the document header.
// Receipt headers carry the strongest vendor signal.
const headerLineCount = 10

var (
	spaceRe     = regexp.MustCompile(`[ \t]+`)
	blankLineRe = regexp.MustCompile(`\n{3,}`)
	domainRe    = regexp.MustCompile(`@([a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,})`)
)

// CollapseWhitespace trims a string and collapses internal runs of spaces
// and tabs to a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// NormalizeLines collapses horizontal whitespace per line, drops leading and
// trailing blank lines, and squeezes runs of blank lines down to one.
func NormalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = CollapseWhitespace(line)
	}
	out := strings.Join(lines, "\n")
	out = blankLineRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// HeaderSection returns the leading section of a document (first ten
// non-empty lines), where sender identity and vendor branding live.
func HeaderSection(text string) string {
	var header []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header = append(header, line)
		if len(header) >= headerLineCount {
			break
		}
	}
	return strings.Join(header, "\n")
}

// ExtractDomain returns the first email-style domain token ("@name.tld")
// found in the given text, lowercased without the leading "@". Returns ""
// when none is present.
func ExtractDomain(text string) string {
	matches := domainRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.ToLower(matches[1])
	}
	return ""
}

// SenderDomain extracts the domain part of an email address such as
// "Orders <auto-confirm@amazon.com>". Returns "" when the input has no
// parsable domain.
func SenderDomain(sender string) string {
	return ExtractDomain(sender)
}
