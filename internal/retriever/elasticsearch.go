package retriever

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"

	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

// Retriever runs full-text candidate queries against the career index.
type Retriever struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func New(client *elasticsearch.Client, index string, log logger.Logger) *Retriever {
	return &Retriever{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "retriever", "index": index}),
	}
}

type searchResponse struct {
	Took int `json:"took"`
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		MaxScore float64 `json:"max_score"`
		Hits     []struct {
			Score  float64  `json:"_score"`
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search executes a best-fields query over the composed document text and the
// most descriptive career fields, returning up to nResults candidates with
// similarity normalized to [0,1] against the top hit.
func (r *Retriever) Search(ctx context.Context, query string, nResults int) ([]models.Candidate, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"document_text^3", "job_description^2", "primary_skills", "interest_cluster"},
				"type":      "best_fields",
				"fuzziness": "AUTO",
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.NewSearchQueryFailedError(err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(payload)),
		r.client.Search.WithSize(nResults),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewSearchTimeoutError()
		}
		return nil, apperrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewIndexNotFoundError(r.index)
		}
		return nil, apperrors.NewSearchQueryFailedError(fmt.Errorf("elasticsearch: %s", res.Status()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewSearchQueryFailedError(fmt.Errorf("decode response: %w", err))
	}

	candidates := make([]models.Candidate, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		similarity := 0.0
		if parsed.Hits.MaxScore > 0 {
			similarity = hit.Score / parsed.Hits.MaxScore
		}
		candidates = append(candidates, models.Candidate{
			CareerRecord: hit.Source.CareerRecord,
			Similarity:   similarity,
		})
	}

	r.logger.Debug("candidate search completed", map[string]interface{}{
		"totalHits": parsed.Hits.Total.Value,
		"returned":  len(candidates),
		"tookMs":    parsed.Took,
	})

	return candidates, nil
}
