package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lukeklipping/NourishBox/models"
)

// MealRepository is the store surface for the read-mostly meal catalog.
type MealRepository interface {
	FindAll(ctx context.Context) ([]models.Meal, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
	// FindByTag returns meals whose tag list has a case-insensitive
	// substring match for tag and which carry an image.
	FindByTag(ctx context.Context, tag string, limit int64) ([]models.Meal, error)
	// Sample draws size random meals with an image, at the store level so
	// fairness does not degrade as the catalog grows.
	Sample(ctx context.Context, size int64) ([]models.Meal, error)
	// SearchByName matches names case-insensitively; an empty term matches
	// every meal.
	SearchByName(ctx context.Context, term string) ([]models.Meal, error)
	Insert(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error)
}

// hasImage filters out documents with a missing or null imageUrl.
var hasImage = bson.M{"$exists": true, "$ne": nil}

type MongoMealRepository struct {
	col *mongo.Collection
}

func NewMongoMealRepository(db *mongo.Database) *MongoMealRepository {
	return &MongoMealRepository{col: db.Collection("meals")}
}

func (r *MongoMealRepository) FindAll(ctx context.Context) ([]models.Meal, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var meals []models.Meal
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MongoMealRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	var meal models.Meal
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *MongoMealRepository) FindByTag(ctx context.Context, tag string, limit int64) ([]models.Meal, error) {
	filter := bson.M{
		"tags":     bson.M{"$elemMatch": bson.M{"$regex": tag, "$options": "i"}},
		"imageUrl": hasImage,
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var meals []models.Meal
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MongoMealRepository) Sample(ctx context.Context, size int64) ([]models.Meal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"imageUrl": hasImage}}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var meals []models.Meal
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MongoMealRepository) SearchByName(ctx context.Context, term string) ([]models.Meal, error) {
	filter := bson.M{}
	if term != "" {
		filter = bson.M{"name": bson.M{"$regex": term, "$options": "i"}}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var meals []models.Meal
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MongoMealRepository) Insert(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, meal)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
