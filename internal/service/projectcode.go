package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hgroves/togglcon/internal/domain"
)

// projectNR is the sentinel project for non-reportable time. It is
// exempt from code parsing and gets empty project and job numbers.
const projectNR = "NR"

// Accepted code shapes. The patterns are prefix-anchored only: a code
// is valid as long as it starts with one of the shapes.
var (
	projectCompoundRe = regexp.MustCompile(`^[A-Z]-\d[A-Z]{3}-\d{3}`)
	projectShortRe    = regexp.MustCompile(`^[A-Z]{3}\d{3}`)
	jobCompoundRe     = regexp.MustCompile(`^[A-Z]{3}-\d{3}`)
	jobShortRe        = regexp.MustCompile(`^[A-Z]{3}\d{3}`)

	digitRunRe = regexp.MustCompile(`\d+`)
)

func wrongProjectFormat(name string) *domain.Error {
	return &domain.Error{
		Kind:    domain.KindWrongProjectFormat,
		Message: fmt.Sprintf("The project name %q has not followed the correct formatting. Please fix and try again.", name),
	}
}

// parseProjectCode turns a raw Toggl project string of the shape
// "<project>/<job> - <description>" into validated project and job
// numbers.
//
// Candidates that already start with an accepted shape are kept as-is.
// Otherwise they are normalized from their digit runs: "P123/J045"
// becomes project "PRO123-045" and job "WIP123-045" (the job digits
// complete the project code when the project candidate carries no
// digits beyond its first three).
func parseProjectCode(raw string) (projectNo, jobNo string, err error) {
	head, _, _ := strings.Cut(raw, " - ")
	projectPart, jobPart, found := strings.Cut(head, "/")
	if !found {
		return "", "", wrongProjectFormat(raw)
	}
	projectPart = strings.TrimSpace(projectPart)
	jobPart = strings.TrimSpace(jobPart)

	projectDigits := digitRunRe.FindString(projectPart)
	jobDigits := digitRunRe.FindString(jobPart)

	projectNo = projectPart
	if !projectCompoundRe.MatchString(projectNo) && !projectShortRe.MatchString(projectNo) {
		if len(projectDigits) < 3 {
			return "", "", wrongProjectFormat(raw)
		}
		suffix := projectDigits[3:]
		if suffix == "" {
			suffix = jobDigits
		}
		projectNo = "PRO" + projectDigits[:3] + "-" + suffix
	}

	jobNo = jobPart
	if !jobCompoundRe.MatchString(jobNo) && !jobShortRe.MatchString(jobNo) {
		if len(projectDigits) < 3 || jobDigits == "" {
			return "", "", wrongProjectFormat(raw)
		}
		jobNo = "WIP" + projectDigits[:3] + "-" + jobDigits
	}

	if !projectCompoundRe.MatchString(projectNo) && !projectShortRe.MatchString(projectNo) {
		return "", "", wrongProjectFormat(projectNo)
	}
	if !jobCompoundRe.MatchString(jobNo) && !jobShortRe.MatchString(jobNo) {
		return "", "", &domain.Error{
			Kind:    domain.KindWrongProjectFormat,
			Message: fmt.Sprintf("The job number %q should be a) [3xletter]-[3xdigit], or b) [3xletter][3xdigit].", jobNo),
		}
	}

	return projectNo, jobNo, nil
}
