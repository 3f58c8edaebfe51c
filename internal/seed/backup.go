package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/storage"
	"github.com/google/uuid"
)

// Backup snapshots the content being seeded to a cloud storage bucket so a
// bad seed run can be reverted.
type Backup struct {
	client *storage.Client
	bucket string
}

// NewBackup builds a backup writer for bucket.
func NewBackup(ctx context.Context, app *firebase.App, bucket string) (*Backup, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}

	return &Backup{client: client, bucket: bucket}, nil
}

// Snapshot writes one JSON snapshot of the collections under a
// date-stamped path and returns that path.
func (b *Backup) Snapshot(ctx context.Context, base string, collections map[string]map[string]map[string]any) (string, error) {
	data, err := json.Marshal(collections)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	path := fmt.Sprintf("seed-snapshots/%s/%s.json", base, time.Now().UTC().Format("2006-01-02T15-04-05"))

	bucket, err := b.client.Bucket(b.bucket)
	if err != nil {
		return "", err
	}

	object := bucket.Object(path)
	writer := object.NewWriter(ctx)
	writer.ObjectAttrs.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": uuid.New().String(),
	}
	defer writer.Close()

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return "", err
	}

	return path, nil
}
