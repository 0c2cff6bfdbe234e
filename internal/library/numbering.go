package library

import (
	"strconv"
	"strings"
)

// formatNumbering renders counter values according to a pattern such as
// "1.1." or "1.a". Counting symbols (1, a, A) each format one level;
// everything between them separates, and a trailing non-symbol becomes
// the suffix. When the counter is deeper than the pattern, the last
// symbol repeats with the last separator.
func formatNumbering(pattern string, nums []int) string {
	type piece struct {
		symbol byte
		suffix string
	}
	var pieces []piece
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '1' && c != 'a' && c != 'A' {
			if len(pieces) > 0 {
				pieces[len(pieces)-1].suffix += string(c)
			}
			continue
		}
		pieces = append(pieces, piece{symbol: c})
	}
	if len(pieces) == 0 || len(nums) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, n := range nums {
		p := pieces[len(pieces)-1]
		if i < len(pieces) {
			p = pieces[i]
		}
		sb.WriteString(formatCounter(p.symbol, n))
		if i+1 < len(nums) {
			if p.suffix != "" {
				sb.WriteString(p.suffix)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	// Trailing suffix of the last used piece.
	last := pieces[len(pieces)-1]
	if len(nums) <= len(pieces) {
		last = pieces[len(nums)-1]
	}
	sb.WriteString(last.suffix)
	return sb.String()
}

func formatCounter(symbol byte, n int) string {
	if n < 1 {
		n = 1
	}
	switch symbol {
	case 'a', 'A':
		var sb []byte
		for n > 0 {
			n--
			sb = append([]byte{byte('a' + n%26)}, sb...)
			n /= 26
		}
		s := string(sb)
		if symbol == 'A' {
			s = strings.ToUpper(s)
		}
		return s
	default:
		return strconv.Itoa(n)
	}
}
