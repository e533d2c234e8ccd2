package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"triage-chatbot/internal/model"
	"triage-chatbot/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "triagebot"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	items, err := loadQuestionBank(filepath.Join(dataDir, "questions.json"))
	if err != nil {
		log.Fatalf("Failed to load question bank: %v", err)
	}
	clusters, err := loadDiffBank(filepath.Join(dataDir, "differential_questions.json"))
	if err != nil {
		log.Fatalf("Failed to load diff bank: %v", err)
	}
	labels, err := loadLabels(filepath.Join(dataDir, "disorder_labels.json"))
	if err != nil {
		log.Fatalf("Failed to load labels: %v", err)
	}

	if err := replaceCollection(ctx, db, repository.QuestionBankCollection, asDocs(items)); err != nil {
		log.Fatalf("Failed to seed question bank: %v", err)
	}
	if err := replaceCollection(ctx, db, repository.DiffBankCollection, asDocs(clusters)); err != nil {
		log.Fatalf("Failed to seed diff bank: %v", err)
	}
	labelDocs := make([]interface{}, 0, len(labels))
	for key, label := range labels {
		labelDocs = append(labelDocs, bson.M{"_id": key, "label": label})
	}
	if err := replaceCollection(ctx, db, repository.LabelsCollection, labelDocs); err != nil {
		log.Fatalf("Failed to seed labels: %v", err)
	}

	fmt.Printf("Seeded %d catalog items, %d diff clusters, %d labels into %s\n",
		len(items), len(clusters), len(labels), dbName)
}

// questions.json wraps the item list in a top-level object
type questionFile struct {
	QuestionBank []model.QuestionItem `json:"question_bank"`
}

func loadQuestionBank(path string) ([]model.QuestionItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f questionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f.QuestionBank, nil
}

// differential_questions.json is either a bare array or wrapped in
// {"diff_questions": [...]}; both forms are accepted.
func loadDiffBank(path string) ([]model.DiffCluster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var clusters []model.DiffCluster
	if err := json.Unmarshal(raw, &clusters); err == nil {
		return clusters, nil
	}
	var wrapped struct {
		DiffQuestions []model.DiffCluster `json:"diff_questions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.DiffQuestions, nil
}

func loadLabels(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string)
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func asDocs[T any](xs []T) []interface{} {
	docs := make([]interface{}, 0, len(xs))
	for _, x := range xs {
		docs = append(docs, x)
	}
	return docs
}

// replaceCollection drops the collection and reinserts the given docs so
// the seeder stays idempotent.
func replaceCollection(ctx context.Context, db *mongo.Database, name string, docs []interface{}) error {
	coll := db.Collection(name)
	if err := coll.Drop(ctx); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
