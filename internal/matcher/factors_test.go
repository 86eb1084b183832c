package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

func TestScoreEducation(t *testing.T) {
	// Recognized level with a synonym hit in the pathway text.
	assert.Equal(t, 100.0, scoreEducation("bachelor", "requires an undergraduate degree"))
	assert.Equal(t, 100.0, scoreEducation("Master of Science", "postgraduate training recommended"))
	assert.Equal(t, 100.0, scoreEducation("high school", "secondary education sufficient"))

	// Recognized level, no synonym in the pathway text.
	assert.Equal(t, 60.0, scoreEducation("phd", "on-the-job training provided"))

	// Unrecognized level falls back to the default.
	assert.Equal(t, 70.0, scoreEducation("bootcamp", "bachelor degree required"))
	assert.Equal(t, 70.0, scoreEducation("", "anything"))
}

func TestExperienceBuckets(t *testing.T) {
	assert.Equal(t, "entry", experienceBucket(0))
	assert.Equal(t, "entry", experienceBucket(2))
	assert.Equal(t, "mid", experienceBucket(3))
	assert.Equal(t, "mid", experienceBucket(5))
	assert.Equal(t, "senior", experienceBucket(6))
	assert.Equal(t, "senior", experienceBucket(30))
}

func TestScoreExperience(t *testing.T) {
	junior := &models.CareerRecord{Description: "junior analyst position"}
	assert.Equal(t, 100.0, scoreExperience(1, junior))
	// Mid bucket keywords do not appear; flexible fit, never below 80.
	assert.Equal(t, 80.0, scoreExperience(4, junior))

	senior := &models.CareerRecord{Title: "Lead Engineer"}
	assert.Equal(t, 100.0, scoreExperience(10, senior))
	assert.Equal(t, 80.0, scoreExperience(1, senior))
}

func TestScoreField(t *testing.T) {
	career := &models.CareerRecord{
		FamilyTitle: "Software Developers",
		Title:       "Backend Developer",
	}

	// No stated field is neutral-positive.
	assert.Equal(t, 80.0, scoreField("", career))
	// Exact substring of the career domain.
	assert.Equal(t, 100.0, scoreField("software", career))
	// Related via the field-relation table (technology -> software).
	assert.Equal(t, 85.0, scoreField("technology", career))
	// Unrelated field.
	assert.Equal(t, 50.0, scoreField("agriculture", career))
}

func TestScoreDemand(t *testing.T) {
	assert.Equal(t, 70.0, scoreDemand(&models.CareerRecord{}))

	half := 2.5
	assert.Equal(t, 50.0, scoreDemand(&models.CareerRecord{MarketDemandScore: &half}))

	big := 9.0
	assert.Equal(t, 100.0, scoreDemand(&models.CareerRecord{MarketDemandScore: &big}))
}

func TestOverlapRatio(t *testing.T) {
	assert.Equal(t, 0.5, overlapRatio(nil, "anything"))
	assert.Equal(t, 0.5, overlapRatio([]string{}, "anything"))
	assert.Equal(t, 0.0, overlapRatio([]string{"  "}, "anything"))

	assert.Equal(t, 1.0, overlapRatio([]string{"teaching"}, "teaching mentoring"))
	assert.Equal(t, 0.5, overlapRatio([]string{"teaching", "sales"}, "teaching mentoring"))
	assert.Equal(t, 0.0, overlapRatio([]string{"welding"}, "teaching mentoring"))

	// Case-insensitive on both sides.
	assert.Equal(t, 1.0, overlapRatio([]string{"Teaching"}, "TEACHING staff"))
}
