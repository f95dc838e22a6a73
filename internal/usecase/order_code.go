package usecase

import (
	"crypto/rand"
	"strings"
)

// Order codes are short on purpose: customers read them aloud at pickup and
// type them into the order finder. 36^4 codes is plenty for a single shop's
// open-order window; collisions are handled by the caller retrying.

const orderCodeLength = 4
const orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newOrderCode() string {
	buf := make([]byte, orderCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; rand.Read panics
		// internally on broken entropy sources.
		panic(err)
	}
	for i := range buf {
		buf[i] = orderCodeAlphabet[int(buf[i])%len(orderCodeAlphabet)]
	}
	return string(buf)
}

// normalizeOrderCode uppercases a lookup query and strips the decorative
// leading "#" customers tend to include.
func normalizeOrderCode(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "#")
	return strings.ToUpper(code)
}

// normalizePhone strips everything but digits so that formatted and
// unformatted phone numbers compare equal.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
