package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"triage-chatbot/internal/model"
)

// Collection names used by the catalog store and the seeder
const (
	QuestionBankCollection = "question_bank"
	DiffBankCollection     = "diff_bank"
	LabelsCollection       = "disorder_labels"
)

// CatalogRepo loads the static triage catalogs. Loads happen once at
// startup; callers treat an error as "catalog absent" and degrade to an
// empty bank rather than failing the process.
type CatalogRepo interface {
	LoadQuestionBank(ctx context.Context) ([]model.QuestionItem, error)
	LoadDiffBank(ctx context.Context) ([]model.DiffCluster, error)
	LoadLabelOverrides(ctx context.Context) (map[string]string, error)
}

type catalogRepo struct {
	questions *mongo.Collection
	diff      *mongo.Collection
	labels    *mongo.Collection
}

// NewCatalogRepo creates a catalog repository over the given database
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		questions: db.Collection(QuestionBankCollection),
		diff:      db.Collection(DiffBankCollection),
		labels:    db.Collection(LabelsCollection),
	}
}

// LoadQuestionBank returns all catalog items in insertion order
func (r *catalogRepo) LoadQuestionBank(ctx context.Context) ([]model.QuestionItem, error) {
	cursor, err := r.questions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []model.QuestionItem
	for cursor.Next(ctx) {
		var it model.QuestionItem
		if err := cursor.Decode(&it); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, cursor.Err()
}

// LoadDiffBank returns the differential clusters. Documents that fail to
// decode are dropped individually instead of failing the load.
func (r *catalogRepo) LoadDiffBank(ctx context.Context) ([]model.DiffCluster, error) {
	cursor, err := r.diff.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clusters []model.DiffCluster
	for cursor.Next(ctx) {
		var cl model.DiffCluster
		if err := cursor.Decode(&cl); err != nil {
			continue
		}
		clusters = append(clusters, cl)
	}
	return clusters, cursor.Err()
}

type labelDoc struct {
	Key   string `bson:"_id"`
	Label string `bson:"label"`
}

// LoadLabelOverrides returns the label override table. Undecodable rows
// are skipped; the built-in defaults stay in effect for their keys.
func (r *catalogRepo) LoadLabelOverrides(ctx context.Context) (map[string]string, error) {
	cursor, err := r.labels.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	overrides := make(map[string]string)
	for cursor.Next(ctx) {
		var doc labelDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if doc.Key != "" && doc.Label != "" {
			overrides[doc.Key] = doc.Label
		}
	}
	return overrides, cursor.Err()
}
