package spy

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,30}$`)

// Tag is a lowercase bookmark label.
type Tag string

// ParseTag validates s and returns it as a lowercase Tag.
func ParseTag(s string) (Tag, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", Errorf(EINVALID, "tag must not be empty")
	}
	if !tagRe.MatchString(trimmed) {
		return "", Errorf(EINVALID, "invalid tag %q: use up to 30 letters, digits, '-' or '_'", trimmed)
	}
	return Tag(strings.ToLower(trimmed)), nil
}

// ParseTags parses every value and drops duplicates, keeping first-seen order.
func ParseTags(values []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(values))
	seen := make(map[Tag]bool, len(values))
	for _, v := range values {
		tag, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}
