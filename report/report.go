// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-tally/tally"
)

// Line renders one placement as "(score) option (voter[weight], ...)".
func Line(p tally.Placement) string {
	votes := make([]string, len(p.Votes))
	for i, v := range p.Votes {
		votes[i] = fmt.Sprintf("%s[%s]", v.Voter, v.Weight)
	}
	return fmt.Sprintf("(%s) %s (%s)", humanize.Ftoa(p.Score), p.Option, strings.Join(votes, ", "))
}

// Lines renders every placement, prefixed with its ordinal place.
func Lines(placements []tally.Placement) []string {
	lines := make([]string, len(placements))
	for i, p := range placements {
		lines[i] = fmt.Sprintf("%s %s", humanize.Ordinal(i+1), Line(p))
	}
	return lines
}

// Write prints a titled report of a tally.
func Write(w io.Writer, question string, method tally.Method, ballots int, placements []tally.Placement) error {
	var b strings.Builder
	if question != "" {
		fmt.Fprintf(&b, "*%s*\n", question)
	}
	fmt.Fprintf(&b, "%s, %s %s\n\n", method.Label(), humanize.Comma(int64(ballots)), plural(ballots, "ballot", "ballots"))
	for _, line := range Lines(placements) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
