package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

const collectionRoutes = "routes"

type RouteRepository struct {
	col *mongo.Collection
}

func NewRouteRepository(db *mongo.Database) *RouteRepository {
	return &RouteRepository{col: db.Collection(collectionRoutes)}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if route.ID == "" {
		route.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, route); err != nil {
		return transportErr("insert route", err)
	}
	return nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id string) (*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var route domain.Route
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&route)
	if err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, transportErr("find route", err)
	}
	return &route, nil
}

func (r *RouteRepository) ListAll(ctx context.Context) ([]*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, transportErr("list routes", err)
	}
	defer cur.Close(ctx)

	var routes []*domain.Route
	if err := cur.All(ctx, &routes); err != nil {
		return nil, transportErr("decode routes", err)
	}
	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, route *domain.Route) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": route.ID}, route)
	if err != nil {
		return transportErr("update route", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return transportErr("delete route", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the routes collection.
func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "driver_id", Value: 1}}},
		{Keys: bson.D{{Key: "hub_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
