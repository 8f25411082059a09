package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// "  - [x] Passport" → ["  ", "x", "Passport"]
	CheckboxPattern = `^(\s*)[-*] \[([ xX])\] (.+)$`
	HeadingPattern  = `^#{1,6}\s+(.+?)\s*#*\s*$`
)

var (
	checkboxRe = regexp.MustCompile(CheckboxPattern)
	headingRe  = regexp.MustCompile(HeadingPattern)
	fencedRe   = regexp.MustCompile("(?s)```.*?```")
	inlineRe   = regexp.MustCompile("`[^`]+`")
)

// sanitizeMarkdown drops code so example checkboxes inside it are not imported.
func sanitizeMarkdown(content string) string {
	return inlineRe.ReplaceAllString(fencedRe.ReplaceAllString(content, ""), "")
}

// ParseMarkdown extracts checkboxes, tagging each with the category of the
// heading above it.
func ParseMarkdown(content string) []Checkbox {
	current := CategoryOther
	var boxes []Checkbox
	for _, line := range strings.Split(sanitizeMarkdown(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if m := headingRe.FindStringSubmatch(line); m != nil {
			current = ParseCategory(m[1])
			continue
		}
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[3])
		if text == "" {
			continue
		}
		boxes = append(boxes, Checkbox{
			Indent:   m[1],
			Checked:  strings.EqualFold(m[2], "x"),
			Text:     text,
			Category: current,
			RawLine:  line,
		})
	}
	return boxes
}

// MarkdownProgress counts checked boxes in content.
func MarkdownProgress(content string) Progress {
	boxes := ParseMarkdown(content)
	packed := 0
	for _, b := range boxes {
		if b.Checked {
			packed++
		}
	}
	return NewProgress(len(boxes), packed)
}

// ToggleMarkdown sets every checkbox whose text contains search (case-insensitive)
// and reports how many lines changed.
func ToggleMarkdown(content, search string, checked bool) (string, int) {
	search = strings.ToLower(strings.TrimSpace(search))
	if content == "" || search == "" {
		return content, 0
	}

	state := CheckboxUnchecked
	if checked {
		state = CheckboxChecked
	}

	lines := strings.Split(content, "\n")
	count := 0
	for i, line := range lines {
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil || !strings.Contains(strings.ToLower(m[3]), search) {
			continue
		}
		lines[i] = m[1] + state + " " + m[3]
		count++
	}
	return strings.Join(lines, "\n"), count
}

// RenderMarkdown writes items as a checklist with one heading per non-empty
// category, in category order then list order.
func RenderMarkdown(items []PackingItem) string {
	grouped := make(map[Category][]PackingItem, len(Categories()))
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	var b strings.Builder
	for _, c := range Categories() {
		group := grouped[c]
		if len(group) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## " + string(c) + "\n")
		for _, it := range group {
			state := CheckboxUnchecked
			if it.Packed {
				state = CheckboxChecked
			}
			b.WriteString(state + " " + it.Name + "\n")
		}
	}
	return b.String()
}
