package parser

import "strings"

// parsePairs decodes an application/x-www-form-urlencoded query string.
// Empty segments are skipped and a segment without "=" has an empty value.
func parsePairs(raw string) []QueryPair {
	pairs := []QueryPair{}
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, QueryPair{
			Key:   decodeComponent(key),
			Value: decodeComponent(value),
		})
	}
	return pairs
}

// decodeComponent turns "+" into a space and decodes well-formed percent
// escapes. Malformed escapes are kept as written, unlike url.QueryUnescape
// which rejects the whole string.
func decodeComponent(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return strings.ToValidUTF8(s, "\uFFFD")
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
