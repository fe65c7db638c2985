package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"stayhub/config"
	"stayhub/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

const propertyIndex = "properties"

var es *elasticsearch.Client

func ConnectElastic() {
	addr := config.GetEnv("ELASTIC_URL")
	if addr == "" {
		addr = "http://localhost:9200"
	}
	cfg := elasticsearch.Config{
		Addresses: []string{addr},
		Username:  config.GetEnv("ELASTIC_USERNAME"),
		Password:  config.GetEnv("ELASTIC_PASSWORD"),
	}
	var err error
	es, err = elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("cannot connect to Elasticsearch:", err)
	}
}

func propertyDocument(p models.Property) map[string]interface{} {
	minPrice := 0.0
	for _, rt := range p.RoomTypes {
		if rt.Visible && (minPrice == 0 || rt.BasePrice < minPrice) {
			minPrice = rt.BasePrice
		}
	}

	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"address":     p.Address,
		"city":        p.City,
		"state":       p.State,
		"country":     p.Country,
		"starRating":  p.StarRating,
		"status":      p.Status,
		"minPrice":    minPrice,
	}
}

// IndexProperties bulk-loads every property into the search index.
func IndexProperties() error {
	var properties []models.Property
	if err := config.DB.Preload("RoomTypes").Find(&properties).Error; err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, p := range properties {
		meta := fmt.Sprintf(`{ "index" : { "_index" : "%s", "_id" : "%d" } }`, propertyIndex, p.ID)
		buf.WriteString(meta + "\n")

		doc, err := json.Marshal(propertyDocument(p))
		if err != nil {
			log.Printf("skip property %d: %v", p.ID, err)
			continue
		}
		buf.Write(doc)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return nil
	}
	return sendBulkRequest(&buf)
}

// IndexProperty upserts a single property document, used after create
// and update so the index stays close to the database.
func IndexProperty(p models.Property) error {
	if es == nil {
		return fmt.Errorf("elasticsearch client is not initialized")
	}

	res, err := es.Index(
		propertyIndex,
		esutil.NewJSONReader(propertyDocument(p)),
		es.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		es.Index.WithContext(context.Background()),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index property %d: %s", p.ID, res.Status())
	}
	return nil
}

func RemovePropertyFromIndex(propertyID uint) error {
	if es == nil {
		return fmt.Errorf("elasticsearch client is not initialized")
	}

	res, err := es.Delete(
		propertyIndex,
		strconv.FormatUint(uint64(propertyID), 10),
		es.Delete.WithContext(context.Background()),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return nil
}

func sendBulkRequest(body *bytes.Buffer) error {
	res, err := es.Bulk(body, es.Bulk.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	var bulkRes struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID    string          `json:"_id"`
			Error json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("parse bulk response: %w", err)
	}

	if bulkRes.Errors {
		for _, item := range bulkRes.Items {
			for _, op := range item {
				if len(op.Error) > 0 {
					log.Printf("index document %s failed: %s", op.ID, op.Error)
				}
			}
		}
		return fmt.Errorf("bulk indexing reported errors")
	}
	return nil
}

// SearchPropertiesES runs a fuzzy multi-field search against the
// property index with optional term filters.
func SearchPropertiesES(params map[string]string) ([]models.Property, int, error) {
	if es == nil {
		return nil, 0, fmt.Errorf("elasticsearch client is not initialized")
	}

	boolQuery := buildBoolQuery(params["search"], buildFilters(params))
	queryBody := buildQueryBody(boolQuery, params)

	var results struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Property `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(propertyIndex),
		es.Search.WithBody(esutil.NewJSONReader(queryBody)),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return nil, 0, err
	}

	properties := make([]models.Property, 0, len(results.Hits.Hits))
	for _, hit := range results.Hits.Hits {
		properties = append(properties, hit.Source)
	}
	return properties, results.Hits.Total.Value, nil
}

func buildFilters(params map[string]string) []map[string]interface{} {
	filters := []map[string]interface{}{}

	if v := params["city"]; v != "" {
		filters = append(filters, term("city", v))
	}
	if v := params["state"]; v != "" {
		filters = append(filters, term("state", v))
	}
	if v := params["country"]; v != "" {
		filters = append(filters, term("country", v))
	}
	if v := params["status"]; v != "" {
		filters = append(filters, term("status", v))
	}
	if v := params["starRating"]; v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			filters = append(filters, rangeGTE("starRating", val))
		}
	}

	return filters
}

func buildBoolQuery(search string, filters []map[string]interface{}) map[string]interface{} {
	shouldQuery := []map[string]interface{}{}
	if search != "" {
		shouldQuery = append(shouldQuery,
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":     search,
					"fields":    []string{"name^3", "address^2", "city^2", "state", "country", "description"},
					"fuzziness": "AUTO",
				},
			},
			map[string]interface{}{
				"match_phrase_prefix": map[string]interface{}{
					"name": search,
				},
			},
		)
	}

	boolQuery := map[string]interface{}{
		"filter": filters,
	}
	if len(shouldQuery) > 0 {
		boolQuery["should"] = shouldQuery
		boolQuery["minimum_should_match"] = 1
	}

	return map[string]interface{}{"bool": boolQuery}
}

func buildQueryBody(query map[string]interface{}, params map[string]string) map[string]interface{} {
	page, _ := strconv.Atoi(params["page"])
	limit, _ := strconv.Atoi(params["limit"])
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	return map[string]interface{}{
		"from":  (page - 1) * limit,
		"size":  limit,
		"query": query,
		"sort": []map[string]interface{}{
			{"_score": "desc"},
		},
	}
}

func term(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"term": map[string]interface{}{field: value},
	}
}

func rangeGTE(field string, value int) map[string]interface{} {
	return map[string]interface{}{
		"range": map[string]interface{}{
			field: map[string]interface{}{"gte": value},
		},
	}
}
