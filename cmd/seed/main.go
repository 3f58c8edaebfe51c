// Seed loads a directory of YAML content collections into the store.
//
// Usage:
//
//	seed -dir ./content -base content [-bucket my-bucket.firebasestorage.app]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	fb "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/mmogib/classwork-v2/internal/seed"
)

func main() {
	log.SetPrefix("[classwork-v2 seed] ")

	dir := flag.String("dir", "content", "directory of content collections")
	base := flag.String("base", "content", "target store base")
	bucket := flag.String("bucket", "", "optional storage bucket for a pre-seed snapshot")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on process environment")
	}

	credentials := os.Getenv("FIREBASE_CONFIG")
	if credentials == "" {
		log.Fatal("FIREBASE_CONFIG environment variable is required")
	}

	ctx := context.Background()

	app, err := fb.NewApp(ctx, nil, option.WithCredentialsFile(credentials))
	if err != nil {
		log.Fatalf("error initializing firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("error initializing firestore: %v", err)
	}
	defer client.Close()

	collections, err := seed.LoadDir(*dir)
	if err != nil {
		log.Fatalf("error loading content: %v", err)
	}
	if len(collections) == 0 {
		log.Fatalf("no collections found under %s", *dir)
	}

	if *bucket != "" {
		backup, err := seed.NewBackup(ctx, app, *bucket)
		if err != nil {
			log.Fatalf("error initializing backup: %v", err)
		}

		path, err := backup.Snapshot(ctx, *base, collections)
		if err != nil {
			log.Fatalf("error writing snapshot: %v", err)
		}
		log.Printf("snapshot written to %s", path)
	}

	if err := seed.NewSeeder(client, *base).Write(ctx, collections); err != nil {
		log.Fatalf("error seeding: %v", err)
	}
}
