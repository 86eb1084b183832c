// cmd/tools/catalog-indexer/main.go
//
// Rebuilds the Elasticsearch careers index from the Postgres catalog. Indexing
// is a distinct build phase; the server never writes the index itself.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/aradhyadengreee/ai-career-app/internal/catalog"
	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
	"github.com/aradhyadengreee/ai-career-app/internal/retriever"
)

const indexBatchSize = 50

const indexMapping = `{
	"mappings": {
		"properties": {
			"family_title": {"type": "text"},
			"nco_title": {"type": "text"},
			"nco_code": {"type": "keyword"},
			"riasec_code": {"type": "keyword"},
			"job_description": {"type": "text"},
			"primary_skills": {"type": "text"},
			"interest_cluster": {"type": "text"},
			"document_text": {"type": "text"}
		}
	}
}`

func main() {
	recreate := flag.Bool("recreate", false, "Delete and recreate the index before loading")
	dryRun := flag.Bool("dry-run", false, "Build documents but do not touch Elasticsearch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	defer pg.Close()

	careers, err := catalog.NewStore(pg, log).LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog load: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d careers from the catalog\n", len(careers))

	if *dryRun {
		for _, career := range careers {
			fmt.Printf("%s\t%s\n", career.Code, retriever.BuildDocumentText(&career))
		}
		return
	}

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "elasticsearch: %v\n", err)
		os.Exit(1)
	}

	index := cfg.Database.Elasticsearch.Index
	if err := prepareIndex(ctx, esClient.Client, index, *recreate); err != nil {
		fmt.Fprintf(os.Stderr, "prepare index: %v\n", err)
		os.Exit(1)
	}

	indexed := 0
	for start := 0; start < len(careers); start += indexBatchSize {
		end := start + indexBatchSize
		if end > len(careers) {
			end = len(careers)
		}

		if err := indexBatch(ctx, esClient.Client, index, careers[start:end]); err != nil {
			fmt.Fprintf(os.Stderr, "index batch %d-%d: %v\n", start, end, err)
			os.Exit(1)
		}
		indexed += end - start
		fmt.Printf("Indexed %d/%d\n", indexed, len(careers))
	}

	fmt.Printf("Done: %d documents in index %q\n", indexed, index)
}

func prepareIndex(ctx context.Context, es *elasticsearch.Client, index string, recreate bool) error {
	if recreate {
		res, err := es.Indices.Delete([]string{index},
			es.Indices.Delete.WithContext(ctx),
			es.Indices.Delete.WithIgnoreUnavailable(true),
		)
		if err != nil {
			return err
		}
		res.Body.Close()
	}

	res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return err
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	res, err = es.Indices.Create(index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(strings.NewReader(indexMapping)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index: %s", res.Status())
	}
	return nil
}

func indexBatch(ctx context.Context, es *elasticsearch.Client, index string, careers []models.CareerRecord) error {
	var buf bytes.Buffer

	for i := range careers {
		doc := retriever.NewDocument(careers[i])

		action, _ := json.Marshal(map[string]interface{}{
			"index": map[string]interface{}{"_id": doc.Code},
		})
		payload, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		buf.Write(action)
		buf.WriteByte('\n')
		buf.Write(payload)
		buf.WriteByte('\n')
	}

	res, err := es.Bulk(bytes.NewReader(buf.Bytes()),
		es.Bulk.WithContext(ctx),
		es.Bulk.WithIndex(index),
		es.Bulk.WithRefresh("wait_for"),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request: %s", res.Status())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return err
	}
	if bulkResp.Errors {
		return fmt.Errorf("bulk response reported item failures")
	}
	return nil
}
