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

const collectionHubs = "hubs"

type HubRepository struct {
	col *mongo.Collection
}

func NewHubRepository(db *mongo.Database) *HubRepository {
	return &HubRepository{col: db.Collection(collectionHubs)}
}

func (r *HubRepository) Create(ctx context.Context, h *domain.Hub) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if h.ID == "" {
		h.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, h); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrHubExists
		}
		return transportErr("insert hub", err)
	}
	return nil
}

func (r *HubRepository) FindByID(ctx context.Context, id string) (*domain.Hub, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *HubRepository) FindByCode(ctx context.Context, code string) (*domain.Hub, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *HubRepository) findOne(ctx context.Context, filter bson.M) (*domain.Hub, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Hub
	err := r.col.FindOne(ctx, filter).Decode(&h)
	if err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrHubNotFound
		}
		return nil, transportErr("find hub", err)
	}
	return &h, nil
}

func (r *HubRepository) ListAll(ctx context.Context) ([]*domain.Hub, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, transportErr("list hubs", err)
	}
	defer cur.Close(ctx)

	var hubs []*domain.Hub
	if err := cur.All(ctx, &hubs); err != nil {
		return nil, transportErr("decode hubs", err)
	}
	return hubs, nil
}

func (r *HubRepository) Update(ctx context.Context, h *domain.Hub) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": h.ID}, h)
	if err != nil {
		return transportErr("update hub", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHubNotFound
	}
	return nil
}

func (r *HubRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return transportErr("delete hub", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHubNotFound
	}
	return nil
}

// AdjustLoad adds delta to current_load atomically, flooring the result at 0
// so a release on an already-empty hub never goes negative. Loads above
// capacity are allowed; capacity is a soft limit surfaced by the service.
func (r *HubRepository) AdjustLoad(ctx context.Context, id string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"current_load": bson.M{
				"$max": bson.A{0, bson.M{"$add": bson.A{"$current_load", delta}}},
			},
			"updated_at": time.Now().UTC(),
		}}},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return transportErr("adjust hub load", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHubNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the hubs collection.
func (r *HubRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
