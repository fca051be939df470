package repository

import (
	"context"

	"pawbody/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionRepo handles MongoDB operations for the survey question catalog
type QuestionRepo interface {
	GetAll(ctx context.Context) ([]model.Question, error)
	GetByCategory(ctx context.Context, category model.Category) ([]model.Question, error)
	ReplaceAll(ctx context.Context, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{collection: db.Collection("questions")}
}

func (r *questionRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByCategory(ctx context.Context, category model.Category) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ReplaceAll swaps the stored catalog for the given one. Used by the seed
// command; not exposed over the API.
func (r *questionRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			q.ID = uuid.New().String()
		}
		docs[i] = q
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
