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

// UserRepository is the store surface for user documents and the cart
// embedded on them. Every cart mutation is a single conditional update so
// two near-simultaneous requests against the same cart cannot lose a write.
// Lookup methods return (nil, nil) when no document matches.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateFields merges the given fields into the user document and
	// reports whether a document matched.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)

	// IncrementCartItem adds 1 to the quantity of the cart entry with the
	// given title, reporting whether such an entry existed.
	IncrementCartItem(ctx context.Context, id primitive.ObjectID, title string) (bool, error)
	// PushCartItem appends the item, guarded so it only applies while no
	// entry shares its title or its item id. The user's id counter is
	// ratcheted up to the pushed id so later draws cannot collide with it.
	PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) (bool, error)
	// NextCartItemID atomically advances the user's cart id counter and
	// returns the new value. A zero id means the user does not exist.
	NextCartItemID(ctx context.Context, id primitive.ObjectID) (int64, error)
	// UpdateCartItemQuantity sets the quantity of the entry with the given
	// item id. A quantity of zero or less removes the entry instead of
	// storing it. Reports whether the user/item pair matched.
	UpdateCartItemQuantity(ctx context.Context, id primitive.ObjectID, itemID, quantity int64) (bool, error)
	// RemoveCartItem pulls the entry with the given item id. Reports
	// whether the user matched; pulling an id that is not in the cart is
	// not an error.
	RemoveCartItem(ctx context.Context, id primitive.ObjectID, itemID int64) (bool, error)
	ClearCart(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoUserRepository) IncrementCartItem(ctx context.Context, id primitive.ObjectID, title string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "cart.title": title},
		bson.M{"$inc": bson.M{"cart.$.quantity": 1}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoUserRepository) PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"_id":        id,
			"cart.title": bson.M{"$ne": item.Title},
			"cart.id":    bson.M{"$ne": item.ID},
		},
		bson.M{
			"$push": bson.M{"cart": item},
			"$max":  bson.M{"cartSeq": item.ID},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoUserRepository) NextCartItemID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"cartSeq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.CartSeq, nil
}

func (r *MongoUserRepository) UpdateCartItemQuantity(ctx context.Context, id primitive.ObjectID, itemID, quantity int64) (bool, error) {
	filter := bson.M{"_id": id, "cart.id": itemID}
	update := bson.M{"$set": bson.M{"cart.$.quantity": quantity}}
	if quantity <= 0 {
		update = bson.M{"$pull": bson.M{"cart": bson.M{"id": itemID}}}
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoUserRepository) RemoveCartItem(ctx context.Context, id primitive.ObjectID, itemID int64) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"cart": bson.M{"id": itemID}}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoUserRepository) ClearCart(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"cart": []models.CartItem{}}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
