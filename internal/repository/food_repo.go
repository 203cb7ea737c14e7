package repository

import (
	"context"

	"github.com/venudinesh/food-sub000/internal/db"
	"github.com/venudinesh/food-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRepository struct {
	col *mongo.Collection
}

func NewFoodRepository() *FoodRepository {
	return &FoodRepository{col: db.DB().Collection("foods")}
}

func (r *FoodRepository) GetByID(ctx context.Context, foodID int) (*models.FoodDoc, error) {
	var f models.FoodDoc
	err := r.col.FindOne(ctx, bson.M{"foodId": foodID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

// GetAll devuelve el catálogo completo (es la entrada del entrenamiento,
// los catálogos acá son acotados).
func (r *FoodRepository) GetAll(ctx context.Context) ([]models.FoodDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FoodDoc
	for cur.Next(ctx) {
		var f models.FoodDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *FoodRepository) Search(
	ctx context.Context,
	q string,
	category string,
	cuisine string,
	vegetarian *bool,
	limit, offset int,
) ([]models.FoodDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}
	if cuisine != "" {
		filter["cuisine"] = cuisine
	}
	if vegetarian != nil {
		filter["isVegetarian"] = *vegetarian
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FoodDoc
	for cur.Next(ctx) {
		var f models.FoodDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

// Top por popularidad (count) o rating promedio.
func (r *FoodRepository) Top(ctx context.Context, metric string, limit int) ([]models.FoodDoc, error) {
	sortField := "ratingStats.count" // popular
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FoodDoc
	for cur.Next(ctx) {
		var f models.FoodDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *FoodRepository) GetNextFoodID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "foodId", Value: -1}})
	var f models.FoodDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return f.FoodID + 1, nil
}

func (r *FoodRepository) Insert(ctx context.Context, f *models.FoodDoc) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *FoodRepository) Update(ctx context.Context, f *models.FoodDoc) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"foodId": f.FoodID}, f)
	return err
}
