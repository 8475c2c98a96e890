package algorithms

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"jobconnect/internal/models"
)

// Sort keys accepted by RankApplicants. Anything else leaves the filtered
// input order untouched.
const (
	SortByExperience = "experience"
	SortByName       = "name"
	SortByDate       = "date"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseExperience extracts the first contiguous run of digits from a
// free-text experience string ("3 years" -> 3, "5+" -> 5). Strings without
// a digit run ("Fresher", "No experience", "") rank as 0 rather than
// failing: jobseekers type whatever they like into this field.
func ParseExperience(exp string) int {
	match := digitRun.FindString(exp)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// Digit run too long for int; treat like unparseable input.
		return 0
	}
	return n
}

// RankApplicants filters and sorts applications for the employer's
// view-applicants screen. filterRole is a case-insensitive substring match
// on the declared role, filterStatus an exact status match; either filter is
// skipped when empty. A single sort key applies:
//
//	experience - descending by ParseExperience value
//	name       - ascending by applicant name, missing name sorts as ""
//	date       - descending by creation time
//
// Ties keep their original relative order. The input slice is not mutated.
func RankApplicants(apps []models.Application, filterRole string, filterStatus models.ApplicationStatus, sortBy string) []models.Application {
	result := make([]models.Application, 0, len(apps))

	roleNeedle := strings.ToLower(filterRole)
	for _, app := range apps {
		if roleNeedle != "" && !strings.Contains(strings.ToLower(app.Role), roleNeedle) {
			continue
		}
		if filterStatus != "" && app.Status != filterStatus {
			continue
		}
		result = append(result, app)
	}

	switch sortBy {
	case SortByExperience:
		sort.SliceStable(result, func(i, j int) bool {
			return ParseExperience(result[i].Experience) > ParseExperience(result[j].Experience)
		})
	case SortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return applicantName(&result[i]) < applicantName(&result[j])
		})
	case SortByDate:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

func applicantName(app *models.Application) string {
	if app.Applicant == nil {
		return ""
	}
	return app.Applicant.Name
}
