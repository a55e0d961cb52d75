package service

import (
	"sort"

	"github.com/shopspring/decimal"
)

var (
	msPerHour = decimal.NewFromInt(60 * 60 * 1000)
	two       = decimal.NewFromInt(2)
	halfHour  = decimal.New(5, -1)
)

// halfHours converts a millisecond duration to hours rounded to the
// nearest half hour. Ties round half to even (RoundBank), the same
// rule the billing side applies, so 0.25h rounds down to 0.0 and
// 0.75h rounds up to 1.0.
func halfHours(ms int64) decimal.Decimal {
	hours := decimal.NewFromInt(ms).Div(msPerHour)
	return hours.Mul(two).RoundBank(0).Div(two)
}

// reconcileHours adjusts per-group rounded hours in half-hour steps
// until their sum equals nearestTotal, the independently rounded true
// day total. Groups are walked largest-first (repeatedly, if one pass
// is not enough) so the relative distortion per group stays small. A
// subtraction is only applied to a group that retains at least half
// an hour afterwards; if no group is eligible the walk stops short.
func reconcileHours(groups []*group, nearestTotal decimal.Decimal) {
	roundedTotal := decimal.Zero
	for _, g := range groups {
		roundedTotal = roundedTotal.Add(g.hours)
	}

	steps := nearestTotal.Sub(roundedTotal).Mul(two).IntPart()
	if steps == 0 {
		return
	}

	// Stable sort on a copy keeps first-seen order as the tie-break
	// and leaves the caller's ordering alone.
	order := make([]*group, len(groups))
	copy(order, groups)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].hours.GreaterThan(order[j].hours)
	})

	for steps != 0 {
		adjusted := false
		for _, g := range order {
			if steps == 0 {
				break
			}
			if steps > 0 {
				g.hours = g.hours.Add(halfHour)
				steps--
			} else {
				if g.hours.Sub(halfHour).LessThan(halfHour) {
					continue
				}
				g.hours = g.hours.Sub(halfHour)
				steps++
			}
			adjusted = true
		}
		if !adjusted {
			return
		}
	}
}
