package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DefaultOrderNumberTemplate = "OS-{YYYY}{MM}{DD}-{SEQ6}"

var (
	ErrInvalidOrderNumberTemplate = errors.New("invalid order number template")
	ErrInvalidOrderSequence       = errors.New("invalid order sequence")

	seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)
)

// FormatOrderNumber renders a human-readable service order number from a
// template, the opening time and a monotonic sequence. It has no side effects.
//
// Supported tokens: {YYYY} {YY} {MM} {DD} {SEQ} {SEQn}.
func FormatOrderNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidOrderNumberTemplate)
	}
	if seq <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidOrderSequence, seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("%w: unresolved token in %q", ErrInvalidOrderNumberTemplate, out)
	}
	return out, nil
}
