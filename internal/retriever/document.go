// Package retriever provides the Elasticsearch-backed candidate source. The
// catalog is indexed as composed text documents; recommendation requests run
// full-text queries against them and hand the hits to the scoring layer.
package retriever

import (
	"strings"

	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

// Document is one indexed catalog entry: the raw career record plus the
// composed text the search queries run against.
type Document struct {
	models.CareerRecord
	DocumentText string `json:"document_text"`
}

// NewDocument builds the indexable form of a career record.
func NewDocument(career models.CareerRecord) Document {
	return Document{
		CareerRecord: career,
		DocumentText: BuildDocumentText(&career),
	}
}

// BuildDocumentText composes the searchable text for a career record as
// "Label: value | ..." pairs. Blank fields are skipped entirely so they
// contribute no tokens to the index.
func BuildDocumentText(c *models.CareerRecord) string {
	pairs := []struct {
		label string
		value string
	}{
		{"Career", c.FamilyTitle},
		{"Role", c.Title},
		{"RIASEC personality", c.RIASECCode},
		{"Description", c.Description},
		{"Primary skills", strings.Join(c.PrimarySkills(), ", ")},
		{"Secondary skills", strings.Join(c.SecondarySkills(), ", ")},
		{"Emerging skills", strings.Join(c.EmergingSkills(), ", ")},
		{"Interest cluster", c.InterestCluster},
		{"Education", c.LearningPathway},
		{"Industry growth", c.IndustryGrowth},
		{"Geographic demand", c.GeographicDemand},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if v := strings.TrimSpace(p.value); v != "" {
			parts = append(parts, p.label+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}
