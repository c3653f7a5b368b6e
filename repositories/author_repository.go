package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lukeklipping/NourishBox/models"
)

type AuthorRepository interface {
	FindAll(ctx context.Context) ([]models.Author, error)
}

type MongoAuthorRepository struct {
	col *mongo.Collection
}

func NewMongoAuthorRepository(db *mongo.Database) *MongoAuthorRepository {
	return &MongoAuthorRepository{col: db.Collection("authors")}
}

func (r *MongoAuthorRepository) FindAll(ctx context.Context) ([]models.Author, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var authors []models.Author
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}
