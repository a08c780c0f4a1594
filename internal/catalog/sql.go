package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
)

// Schema creates the tables SQLSource reads. The statements are portable
// across MySQL, SQLite and PostgreSQL.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS wiki_entities (
		collection VARCHAR(16) NOT NULL,
		payload TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wiki_tags (
		name VARCHAR(255) NOT NULL
	)`,
}

// SQLSource reads entity records and tags from a database. Each row of
// wiki_entities holds one JSON record and the collection it belongs to.
type SQLSource struct {
	DB *sql.DB
}

// Load implements Source.
func (s SQLSource) Load(ctx context.Context) (Dataset, error) {
	var ds Dataset

	rows, err := s.DB.QueryContext(ctx, `SELECT collection, payload FROM wiki_entities`)
	if err != nil {
		return Dataset{}, fmt.Errorf("query entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var collection string
		var payload []byte
		if err := rows.Scan(&collection, &payload); err != nil {
			return Dataset{}, fmt.Errorf("scan entity: %w", err)
		}
		if !json.Valid(payload) {
			log.Printf("skip invalid %s record: %.64s", collection, payload)
			continue
		}
		if !ds.add(collection, json.RawMessage(payload)) {
			log.Printf("skip record in unknown collection %q", collection)
		}
	}
	if err := rows.Err(); err != nil {
		return Dataset{}, fmt.Errorf("iterate entities: %w", err)
	}

	tagRows, err := s.DB.QueryContext(ctx, `SELECT name FROM wiki_tags ORDER BY name`)
	if err != nil {
		return Dataset{}, fmt.Errorf("query tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var tag string
		if err := tagRows.Scan(&tag); err != nil {
			return Dataset{}, fmt.Errorf("scan tag: %w", err)
		}
		ds.Tags = append(ds.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return Dataset{}, fmt.Errorf("iterate tags: %w", err)
	}
	return ds, nil
}
