package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unescape decodes the escape sequences of a JavaScript string literal body.
// Unknown escapes resolve to the escaped character and a backslash before a
// line break is a line continuation.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)

		case '\n':

		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}

		case 'x':
			if r, ok := hex(s, i+1, 2); ok {
				b.WriteRune(r)
				i += 2
			} else {
				b.WriteByte('x')
			}

		case 'u':
			if i+1 < len(s) && s[i+1] == '{' {
				if end := strings.IndexByte(s[i+1:], '}'); end > 1 {
					if r, ok := hex(s, i+2, end-1); ok {
						b.WriteRune(r)
						i += end + 1
						continue
					}
				}
			} else if r, ok := hex(s, i+1, 4); ok {
				i += 4
				if utf16High(r) {
					if i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
						if low, ok := hex(s, i+3, 4); ok && utf16Low(low) {
							b.WriteRune((r-0xd800)<<10 + (low - 0xdc00) + 0x10000)
							i += 6
							continue
						}
					}
					r = utf8.RuneError
				}

				b.WriteRune(r)
				continue
			}
			b.WriteByte('u')

		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

func hex(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}

	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, false
	}

	return rune(v), true
}

func utf16High(r rune) bool {
	return r >= 0xd800 && r < 0xdc00
}

func utf16Low(r rune) bool {
	return r >= 0xdc00 && r < 0xe000
}
