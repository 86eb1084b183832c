package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
)

var columns = []string{
	"family_title", "nco_title", "nco_code", "riasec_code", "job_description",
	"primary_skills", "secondary_skills", "emerging_skills", "interest_cluster",
	"market_demand_score", "salary_range_analysis", "industry_growth_projection",
	"learning_pathway_recommendations", "automation_risk_assessment",
	"geographic_demand_hotspots", "mapping_confidence",
}

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(&database.PostgresClient{DB: db}, logger.NewTestLogger(t)), mock
}

func TestLoadAll(t *testing.T) {
	store, mock := setupStore(t)

	rows := sqlmock.NewRows(columns).
		AddRow("Teachers", "Secondary School Teacher", "2330", "SAI", "Teaches classes",
			"teaching, mentoring", "", "", "helping people",
			7.5, "Entry: 3 LPA", "growing",
			"bachelor degree", "low risk",
			"urban centres", "high").
		AddRow("Developers", "Backend Developer", "2512", "IRC", "Builds services",
			nil, nil, nil, nil,
			nil, nil, nil,
			nil, nil,
			nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM career_catalog ORDER BY nco_code").WillReturnRows(rows)

	careers, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, careers, 2)

	assert.Equal(t, "Secondary School Teacher", careers[0].Title)
	assert.Equal(t, "SAI", careers[0].RIASECCode)
	require.NotNil(t, careers[0].MarketDemandScore)
	assert.Equal(t, 7.5, *careers[0].MarketDemandScore)

	// NULL columns map to zero values, never to scan failures.
	assert.Equal(t, "Backend Developer", careers[1].Title)
	assert.Nil(t, careers[1].MarketDemandScore)
	assert.Empty(t, careers[1].PrimarySkillsText)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAllQueryFailure(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery("SELECT (.+) FROM career_catalog").WillReturnError(errors.New("connection reset"))

	_, err := store.LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCatalogQueryFailed))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestCount(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM career_catalog").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
