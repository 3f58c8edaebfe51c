// Package seed loads content-collection YAML files into the store. The API
// itself never writes; this is the operator-side tool that owns the data.
package seed

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/firestore"
	"gopkg.in/yaml.v3"
)

// Seeder bulk-writes content collections into one store base.
type Seeder struct {
	client *firestore.Client
	base   string
}

// NewSeeder builds a seeder targeting base.
func NewSeeder(client *firestore.Client, base string) *Seeder {
	return &Seeder{client: client, base: base}
}

// LoadDir reads every YAML file under dir. Each immediate subdirectory is
// one collection; each file becomes one record whose ID is the file name
// without extension, mirroring file-based content collections.
func LoadDir(dir string) (map[string]map[string]map[string]any, error) {
	collections := make(map[string]map[string]map[string]any)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		collection := entry.Name()
		files, err := os.ReadDir(filepath.Join(dir, collection))
		if err != nil {
			return nil, fmt.Errorf("read collection %s: %w", collection, err)
		}

		records := make(map[string]map[string]any)
		for _, file := range files {
			name := file.Name()
			ext := filepath.Ext(name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}

			raw, err := os.ReadFile(filepath.Join(dir, collection, name))
			if err != nil {
				return nil, fmt.Errorf("read %s/%s: %w", collection, name, err)
			}

			var record map[string]any
			if err := yaml.Unmarshal(raw, &record); err != nil {
				return nil, fmt.Errorf("parse %s/%s: %w", collection, name, err)
			}

			records[strings.TrimSuffix(name, ext)] = record
		}

		if len(records) > 0 {
			collections[collection] = records
		}
	}

	return collections, nil
}

// Write bulk-writes all collections under bases/{base}. Existing records
// with matching IDs are overwritten; stale records are left alone so a
// partial content dir never deletes data.
func (s *Seeder) Write(ctx context.Context, collections map[string]map[string]map[string]any) error {
	writer := s.client.BulkWriter(ctx)
	defer writer.End()

	baseDoc := s.client.Collection("bases").Doc(s.base)

	total := 0
	for collection, records := range collections {
		for id, record := range records {
			doc := baseDoc.Collection(collection).Doc(id)
			if _, err := writer.Set(doc, record); err != nil {
				return fmt.Errorf("queue %s/%s: %w", collection, id, err)
			}
			total++
		}
		log.Printf("queued %d record(s) for %s/%s", len(records), s.base, collection)
	}

	writer.Flush()
	log.Printf("seeded %d record(s) into base %s", total, s.base)
	return nil
}
