package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/pkg/toggl"
)

// groupKey identifies one billing group: a unique (project, first-tag)
// pair observed in the day's entries.
type groupKey struct {
	project    string
	chargeType string
}

// descFragment is one distinct description text within a group, with
// the summed duration of every entry that carried it.
type descFragment struct {
	text string
	ms   int64
}

type group struct {
	project    string
	chargeType string
	projectNo  string
	jobNo      string
	client     string
	fragments  []descFragment
	totalMS    int64
	hours      decimal.Decimal
}

// Aggregate collapses one day of raw Toggl entries into billable
// timesheet rows. Entries are grouped by (project, first tag), project
// codes are validated and normalized, descriptions are merged, and
// per-group half-hour rounding is reconciled against the independently
// rounded day total so the row hours always sum to it.
//
// Any failure aborts the whole day; partial rows are never returned.
func Aggregate(date string, entries []toggl.Entry) ([]domain.Row, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &domain.Error{
			Kind:    domain.KindNoDayData,
			Message: "There is no timesheet data entered for this day.",
		}
	}

	var (
		groups  []*group // first-seen order
		byKey   = map[groupKey]*group{}
		clients = map[string]string{} // first non-empty client per project
		totalMS int64
	)

	for _, e := range entries {
		if e.Project == nil {
			return nil, &domain.Error{
				Kind:    domain.KindMissingProject,
				Message: "One of your entries is missing a project. Please fix and try again.",
			}
		}
		if len(e.Tags) == 0 {
			return nil, &domain.Error{
				Kind:    domain.KindMissingChargeType,
				Message: fmt.Sprintf("Missing charge type tag for %s. Please fix and try again.", e.Description),
			}
		}

		project := *e.Project
		key := groupKey{project: project, chargeType: e.Tags[0]}

		g, ok := byKey[key]
		if !ok {
			g = &group{project: project, chargeType: key.chargeType}
			if project != projectNR {
				projectNo, jobNo, err := parseProjectCode(project)
				if err != nil {
					return nil, err
				}
				g.projectNo, g.jobNo = projectNo, jobNo
			}
			byKey[key] = g
			groups = append(groups, g)
		}

		if _, seen := clients[project]; !seen && e.Client != "" {
			clients[project] = e.Client
		}

		g.addDescription(e.Description, e.Dur)
		g.totalMS += e.Dur
		totalMS += e.Dur
	}

	for _, g := range groups {
		g.client = clients[g.project]
		g.hours = halfHours(g.totalMS)
	}

	reconcileHours(groups, halfHours(totalMS))

	// Zero-hour groups are filtered into a fresh slice; the group list
	// is never mutated while being walked.
	kept := make([]*group, 0, len(groups))
	for _, g := range groups {
		if g.hours.IsPositive() {
			kept = append(kept, g)
		}
	}

	rows := make([]domain.Row, 0, len(kept))
	for _, g := range kept {
		rows = append(rows, domain.Row{
			Date:        date,
			Branch:      "",
			ChargeType:  g.chargeType,
			ProjectNo:   g.projectNo,
			JobNo:       g.jobNo,
			Description: g.composeDescription(),
			Hours:       g.hours.StringFixed(1),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProjectNo > rows[j].ProjectNo
	})

	return rows, nil
}

// addDescription records a description fragment, deduplicating by
// exact text: a repeat contributes its duration to the existing
// fragment instead of creating another line.
func (g *group) addDescription(text string, ms int64) {
	for i := range g.fragments {
		if g.fragments[i].text == text {
			g.fragments[i].ms += ms
			return
		}
	}
	g.fragments = append(g.fragments, descFragment{text: text, ms: ms})
}

// composeDescription joins the group's fragments into the visible
// description. The first fragment is bare; later ones carry their own
// rounded duration as a "(1.5hr)" suffix. Fragments whose duration
// rounds to zero still count toward the group total but add no text.
// Everything except NR time is prefixed with the client name.
func (g *group) composeDescription() string {
	parts := make([]string, 0, len(g.fragments))
	for i, frag := range g.fragments {
		h := halfHours(frag.ms)
		if !h.IsPositive() {
			continue
		}
		if i == 0 {
			parts = append(parts, frag.text)
		} else {
			parts = append(parts, fmt.Sprintf("%s (%shr)", frag.text, h.StringFixed(1)))
		}
	}

	joined := strings.Join(parts, ", ")
	if g.project == projectNR {
		return joined
	}
	return "(" + g.client + ") " + joined
}
