// Package catalog reads the career catalog out of Postgres. The catalog is
// the scoring corpus for the lexical matcher and the source of truth the
// candidate index is built from.
package catalog

import (
	"context"
	"database/sql"

	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

const careerColumns = `
	family_title, nco_title, nco_code, riasec_code, job_description,
	primary_skills, secondary_skills, emerging_skills, interest_cluster,
	market_demand_score, salary_range_analysis, industry_growth_projection,
	learning_pathway_recommendations, automation_risk_assessment,
	geographic_demand_hotspots, mapping_confidence`

// Store reads career records from the catalog table.
type Store struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewStore(db *database.PostgresClient, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

// LoadAll returns every career in the catalog in stable code order.
func (s *Store) LoadAll(ctx context.Context) ([]models.CareerRecord, error) {
	rows, err := s.db.Query(ctx, `SELECT `+careerColumns+` FROM career_catalog ORDER BY nco_code`)
	if err != nil {
		return nil, apperrors.NewCatalogQueryFailedError(err)
	}
	defer rows.Close()

	var careers []models.CareerRecord
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, apperrors.NewCatalogQueryFailedError(err)
		}
		careers = append(careers, career)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewCatalogQueryFailedError(err)
	}

	s.logger.Info("catalog loaded", map[string]interface{}{"careers": len(careers)})
	return careers, nil
}

// Count returns the number of catalog entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM career_catalog`).Scan(&n); err != nil {
		return 0, apperrors.NewCatalogQueryFailedError(err)
	}
	return n, nil
}

func scanCareer(rows *sql.Rows) (models.CareerRecord, error) {
	var (
		c      models.CareerRecord
		demand sql.NullFloat64

		description, primary, secondary, emerging  sql.NullString
		cluster, salary, growth, pathway           sql.NullString
		automation, geographic, confidence, family sql.NullString
	)

	err := rows.Scan(
		&family, &c.Title, &c.Code, &c.RIASECCode, &description,
		&primary, &secondary, &emerging, &cluster,
		&demand, &salary, &growth,
		&pathway, &automation,
		&geographic, &confidence,
	)
	if err != nil {
		return models.CareerRecord{}, err
	}

	c.FamilyTitle = family.String
	c.Description = description.String
	c.PrimarySkillsText = primary.String
	c.SecondarySkillsText = secondary.String
	c.EmergingSkillsText = emerging.String
	c.InterestCluster = cluster.String
	c.SalaryRangeText = salary.String
	c.IndustryGrowth = growth.String
	c.LearningPathway = pathway.String
	c.AutomationRiskText = automation.String
	c.GeographicDemand = geographic.String
	c.MappingConfidence = confidence.String

	if demand.Valid {
		v := demand.Float64
		c.MarketDemandScore = &v
	}

	return c, nil
}
