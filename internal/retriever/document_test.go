package retriever

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

func TestBuildDocumentTextSkipsBlankFields(t *testing.T) {
	career := models.CareerRecord{
		FamilyTitle:       "Software Developers",
		Title:             "Backend Developer",
		RIASECCode:        "IRC",
		PrimarySkillsText: "programming, databases",
	}

	text := BuildDocumentText(&career)

	assert.Equal(t,
		"Career: Software Developers | Role: Backend Developer | RIASEC personality: IRC | Primary skills: programming, databases",
		text)
}

func TestBuildDocumentTextEmptyRecord(t *testing.T) {
	assert.Equal(t, "", BuildDocumentText(&models.CareerRecord{}))
}

func TestBuildDocumentTextParsesJSONSkills(t *testing.T) {
	career := models.CareerRecord{
		Title:             "Data Analyst",
		PrimarySkillsText: `[{"skill_name": "SQL"}, {"skill_name": "Statistics"}]`,
	}

	text := BuildDocumentText(&career)
	assert.Contains(t, text, "Primary skills: SQL, Statistics")
}

func TestNewDocumentCarriesRecordAndText(t *testing.T) {
	career := models.CareerRecord{Title: "Nurse", RIASECCode: "SIA"}

	doc := NewDocument(career)
	assert.Equal(t, "Nurse", doc.Title)
	assert.Equal(t, "Role: Nurse | RIASEC personality: SIA", doc.DocumentText)
}
