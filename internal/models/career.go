package models

import (
	"encoding/json"
	"strings"
)

// CareerRecord is one career entry from the catalog. Records are created once
// from the external data source and are immutable during scoring.
type CareerRecord struct {
	FamilyTitle string `json:"family_title"`
	Title       string `json:"nco_title"`
	Code        string `json:"nco_code"`
	RIASECCode  string `json:"riasec_code"`
	Description string `json:"job_description"`

	PrimarySkillsText   string `json:"primary_skills"`
	SecondarySkillsText string `json:"secondary_skills"`
	EmergingSkillsText  string `json:"emerging_skills"`
	InterestCluster     string `json:"interest_cluster"`

	// MarketDemandScore is nil when the source carried no numeric demand value;
	// scoring recovers with a documented default instead of failing the record.
	MarketDemandScore *float64 `json:"market_demand_score,omitempty"`

	SalaryRangeText    string `json:"salary_range_analysis"`
	IndustryGrowth     string `json:"industry_growth_projection"`
	LearningPathway    string `json:"learning_pathway_recommendations"`
	AutomationRiskText string `json:"automation_risk_assessment"`
	GeographicDemand   string `json:"geographic_demand_hotspots"`
	MappingConfidence  string `json:"mapping_confidence"`
}

// PrimarySkills returns the parsed primary skill list.
func (c *CareerRecord) PrimarySkills() []string {
	return ParseSkillsList(c.PrimarySkillsText)
}

// SecondarySkills returns the parsed secondary skill list.
func (c *CareerRecord) SecondarySkills() []string {
	return ParseSkillsList(c.SecondarySkillsText)
}

// EmergingSkills returns the parsed emerging skill list.
func (c *CareerRecord) EmergingSkills() []string {
	return ParseSkillsList(c.EmergingSkillsText)
}

// SalaryRange returns the career-stage salary mapping parsed from the raw
// analysis text.
func (c *CareerRecord) SalaryRange() SalaryRange {
	return ExtractSalaryRange(c.SalaryRangeText)
}

// AutomationRisk classifies the raw automation-risk assessment text.
func (c *CareerRecord) AutomationRisk() string {
	return ExtractAutomationRisk(c.AutomationRiskText)
}

// skillEntry is the object form some catalog rows use for skill lists.
type skillEntry struct {
	SkillName string `json:"skill_name"`
}

// ParseSkillsList parses a raw skills field into a list of skill names.
// Two source formats exist: a JSON array of {"skill_name": ...} objects and a
// plain comma-separated string. Anything unparsable yields an empty list.
func ParseSkillsList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	if strings.HasPrefix(raw, "[") {
		var entries []skillEntry
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			skills := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.SkillName != "" {
					skills = append(skills, e.SkillName)
				}
			}
			return skills
		}
		return []string{}
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// SalaryRange maps a career-stage label (entry/mid/senior) to a free-text range.
type SalaryRange map[string]string

// ExtractSalaryRange parses a comma-separated "label: value" string. A blank
// source yields "Not specified" under all three stage keys; a non-blank source
// with no parsable pairs yields the literal input under all three keys.
func ExtractSalaryRange(raw string) SalaryRange {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SalaryRange{"entry": "Not specified", "mid": "Not specified", "senior": "Not specified"}
	}

	parts := SalaryRange{}
	for _, part := range strings.Split(raw, ",") {
		if level, rangeVal, ok := strings.Cut(part, ":"); ok {
			parts[strings.ToLower(strings.TrimSpace(level))] = strings.TrimSpace(rangeVal)
		}
	}

	if len(parts) == 0 {
		return SalaryRange{"entry": raw, "mid": raw, "senior": raw}
	}
	return parts
}

// ExtractAutomationRisk reduces a free-text risk assessment to a label.
func ExtractAutomationRisk(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case lower == "":
		return "Not specified"
	case strings.Contains(lower, "low"):
		return "Low"
	case strings.Contains(lower, "high"):
		return "High"
	case strings.Contains(lower, "medium"):
		return "Medium"
	default:
		return "Not specified"
	}
}
