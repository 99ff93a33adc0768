package reconcile

import (
	"strconv"
	"strings"
)

// Rewrite replaces every id of mapping found in body.
//
// A token is a maximal run of ASCII digits, optionally introduced by a single
// '-'. Unsigned tokens whose value is a key of mapping are replaced by the mapped
// value. Tokens starting with '-' and every other byte are copied unchanged, so
// the output differs from body only inside replaced digit runs.
func Rewrite(body string, mapping IDMapping) string {
	if len(mapping) == 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body) + 16)

	for i := 0; i < len(body); {
		c := body[i]
		if c != '-' && !isDigit(c) {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(body) && isDigit(body[j]) {
			j++
		}
		token := body[i:j]
		i = j

		if c != '-' {
			if v, err := strconv.ParseUint(token, 10, 64); err == nil {
				if mapped, ok := mapping[v]; ok {
					b.WriteString(strconv.FormatUint(mapped, 10))
					continue
				}
			}
		}
		b.WriteString(token)
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
