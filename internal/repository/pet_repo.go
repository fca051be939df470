package repository

import (
	"context"

	"pawbody/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PetRepo handles MongoDB operations for pet records. It is the sole
// authority for persisted pet state; services write every mutation back
// through Update.
type PetRepo interface {
	Create(ctx context.Context, pet *model.Pet) error
	GetByID(ctx context.Context, id string) (*model.Pet, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.Pet, error)
	Update(ctx context.Context, pet *model.Pet) error
	Delete(ctx context.Context, id string) error
}

type petRepo struct {
	collection *mongo.Collection
}

// NewPetRepo creates a new pet repository
func NewPetRepo(db *mongo.Database) PetRepo {
	return &petRepo{collection: db.Collection("pets")}
}

func (r *petRepo) Create(ctx context.Context, pet *model.Pet) error {
	_, err := r.collection.InsertOne(ctx, pet)
	return err
}

func (r *petRepo) GetByID(ctx context.Context, id string) (*model.Pet, error) {
	var pet model.Pet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepo) GetByOwner(ctx context.Context, ownerID string) ([]*model.Pet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pets []*model.Pet
	if err = cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepo) Update(ctx context.Context, pet *model.Pet) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": pet.ID}, pet)
	return err
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
