package richtext

import (
	"regexp"
	"strings"

	"github.com/atty-social/atty/atproto/syntax"

	"github.com/PuerkitoBio/purell"
)

// A mention of an account by handle. Offsets are into the UTF-8 bytes of the text; End is exclusive.
type Mention struct {
	// Raw text, including the leading '@'
	Handle string
	Start  int
	End    int
}

// A link in the text. Address is the normalized target, which may differ from the covered text (eg, an
// "https://" prefix added to a bare domain).
type Link struct {
	Address string
	Start   int
	End     int
}

// '@' at start of text, or after whitespace or an open paren, then a handle-shaped token
var mentionRegex = regexp.MustCompile(`(?:^|\s|\()(@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)`)

// explicit http(s) URLs, or bare domains with an optional path
var linkRegex = regexp.MustCompile(`\b(?i:https?)://[^\s<>"]+|\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?:/[^\s<>"]*)?`)

// DetectMentions finds handle mentions in scan order. Tokens which are not valid handles are skipped.
func DetectMentions(text string) []Mention {
	var out []Mention
	for _, m := range mentionRegex.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		raw := text[start:end]
		if _, err := syntax.ParseHandle(strings.TrimPrefix(raw, "@")); err != nil {
			continue
		}
		out = append(out, Mention{
			Handle: raw,
			Start:  start,
			End:    end,
		})
	}
	return out
}

// DetectLinks finds links in scan order. Trailing sentence punctuation and unbalanced closing parens are not
// part of a link.
func DetectLinks(text string) []Link {
	var out []Link
	for _, m := range linkRegex.FindAllStringIndex(text, -1) {
		start, end := m[0], m[1]
		end = start + len(trimLinkTail(text[start:end]))
		raw := text[start:end]
		if raw == "" {
			continue
		}
		out = append(out, Link{
			Address: normalizeLink(raw),
			Start:   start,
			End:     end,
		})
	}
	return out
}

func trimLinkTail(s string) string {
	for len(s) > 0 {
		last := s[len(s)-1]
		switch {
		case strings.IndexByte(`.,;:!?'"`, last) >= 0:
			s = s[:len(s)-1]
		case last == ')' && strings.Count(s, ")") > strings.Count(s, "("):
			s = s[:len(s)-1]
		default:
			return s
		}
	}
	return s
}

func normalizeLink(raw string) string {
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + raw
	}
	clean, err := purell.NormalizeURLString(raw, purell.FlagsSafe)
	if err != nil {
		return raw
	}
	return clean
}

// FilterLinks drops links which lie entirely within a mention's inclusive range, eg the domain part of a
// handle picked up as a bare link. A link that only partly overlaps a mention is kept.
func FilterLinks(mentions []Mention, links []Link) []Link {
	var out []Link
	for _, l := range links {
		inside := false
		for _, m := range mentions {
			if l.Start >= m.Start && l.End <= m.End {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, l)
		}
	}
	return out
}
