package markup

import "strings"

const identCutset = " \t\r\n"

// CleanName normalizes a raw token into a safe tag or attribute
// identifier: leading/trailing whitespace is trimmed, each remaining
// space becomes '_', ASCII letters, digits, '_', '-' and '~' pass
// through, and every other byte is replaced with '~'.
//
// The function is total: an all-invalid input maps to an all-'~'
// string of the same trimmed length. Attribute values are never run
// through this — they are escaped, not sanitized.
func CleanName(raw string) string {
	s := strings.Trim(raw, identCutset)
	if s == "" {
		return ""
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = cleanByte(s[i])
	}
	return string(out)
}

func cleanByte(c byte) byte {
	switch {
	case c == ' ':
		return '_'
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return c
	case c == '_', c == '-', c == '~':
		return c
	default:
		return '~'
	}
}
