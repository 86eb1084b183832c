package matcher

import (
	"strings"

	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

// Per-factor defaults for "unknown" inputs. These are deliberately separate
// literal constants, not one shared default.
const (
	educationDefaultScore  = 70
	experienceDefaultScore = 80
	fieldNeutralScore      = 80
	fieldUnrelatedScore    = 50
	demandDefaultScore     = 70
)

// educationLevels maps a user-stated level to the synonym keywords looked up
// in the candidate's learning-pathway text. Order matters: the first level
// whose name appears in the user's stated education wins.
var educationLevels = []struct {
	level    string
	keywords []string
}{
	{"high school", []string{"school", "high school", "secondary", "basic"}},
	{"diploma", []string{"diploma", "certificate", "vocational"}},
	{"bachelor", []string{"bachelor", "undergraduate", "degree", "college"}},
	{"master", []string{"master", "postgraduate", "graduate"}},
	{"phd", []string{"phd", "doctorate", "doctoral"}},
}

// scoreEducation matches the user's education level against the candidate's
// learning-pathway text. A recognized level with a synonym hit scores 100, a
// recognized level without one scores 60, and an unrecognized level falls
// back to the default.
func scoreEducation(userEducation, pathwayText string) float64 {
	userEducation = strings.ToLower(userEducation)
	pathwayText = strings.ToLower(pathwayText)

	for _, entry := range educationLevels {
		if !strings.Contains(userEducation, entry.level) {
			continue
		}
		for _, kw := range entry.keywords {
			if strings.Contains(pathwayText, kw) {
				return 100
			}
		}
		return 60
	}

	return educationDefaultScore
}

// experienceKeywords holds the level markers searched in candidate
// description and titles for each experience bucket.
var experienceKeywords = map[string][]string{
	"entry":  {"entry", "junior", "trainee", "associate", "beginner"},
	"mid":    {"mid", "middle", "experienced", "professional"},
	"senior": {"senior", "lead", "principal", "manager", "director", "head"},
}

// experienceBucket buckets user years into entry/mid/senior.
func experienceBucket(years int) string {
	switch {
	case years <= 2:
		return "entry"
	case years <= 5:
		return "mid"
	default:
		return "senior"
	}
}

// scoreExperience checks bucket-specific keywords against the candidate's
// description and titles. No keyword hit is treated as a flexible fit, never
// as a mismatch, so the score floors at the default.
func scoreExperience(years int, career *models.CareerRecord) float64 {
	desc := strings.ToLower(career.Description)
	title := strings.ToLower(career.Title) + " " + strings.ToLower(career.FamilyTitle)

	for _, kw := range experienceKeywords[experienceBucket(years)] {
		if strings.Contains(desc, kw) || strings.Contains(title, kw) {
			return 100
		}
	}

	return experienceDefaultScore
}

// fieldRelations lists synonym keywords per main field for flexible
// matching. Evaluated in order, first hit wins.
var fieldRelations = []struct {
	mainField string
	related   []string
}{
	{"technology", []string{"it", "software", "computer", "tech", "digital"}},
	{"healthcare", []string{"medical", "health", "hospital", "clinical"}},
	{"finance", []string{"banking", "accounting", "financial", "investment"}},
	{"education", []string{"teaching", "academic", "learning", "training"}},
	{"engineering", []string{"technical", "manufacturing", "construction"}},
}

// relatedFields returns the related-field keywords for a user field, or the
// field itself when it maps to no known relation.
func relatedFields(field string) []string {
	for _, entry := range fieldRelations {
		match := strings.Contains(entry.mainField, field)
		if !match {
			for _, rel := range entry.related {
				if strings.Contains(field, rel) {
					match = true
					break
				}
			}
		}
		if match {
			return append(append([]string{}, entry.related...), entry.mainField)
		}
	}
	return []string{field}
}

// scoreField matches the user's current field against the candidate domain
// text (family title + specific title). Empty field is neutral-positive.
func scoreField(userField string, career *models.CareerRecord) float64 {
	userField = strings.ToLower(strings.TrimSpace(userField))
	if userField == "" {
		return fieldNeutralScore
	}

	domain := strings.ToLower(career.FamilyTitle) + " " + strings.ToLower(career.Title)
	if strings.Contains(domain, userField) {
		return 100
	}

	for _, rel := range relatedFields(userField) {
		if strings.Contains(domain, rel) {
			return 85
		}
	}

	return fieldUnrelatedScore
}

// scoreDemand scales the candidate's numeric market-demand score onto 0-100,
// capped. A missing score recovers to the default rather than failing the
// record.
func scoreDemand(career *models.CareerRecord) float64 {
	if career.MarketDemandScore == nil {
		return demandDefaultScore
	}
	score := *career.MarketDemandScore * 20
	if score > 100 {
		score = 100
	}
	return score
}
