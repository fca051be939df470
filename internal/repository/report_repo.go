package repository

import (
	"context"

	"pawbody/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepo handles MongoDB operations for AI narrative reports
type ReportRepo interface {
	Save(ctx context.Context, report *model.AIReport) error
	GetByID(ctx context.Context, id string) (*model.AIReport, error)
	GetLatestByPet(ctx context.Context, petID string) (*model.AIReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{collection: db.Collection("ai_reports")}
}

func (r *reportRepo) Save(ctx context.Context, report *model.AIReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": report.ID}, report, opts)
	return err
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.AIReport, error) {
	var report model.AIReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) GetLatestByPet(ctx context.Context, petID string) (*model.AIReport, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var report model.AIReport
	err := r.collection.FindOne(ctx, bson.M{"petId": petID}, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
