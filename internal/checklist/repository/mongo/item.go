package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"travel-planner/internal/checklist"
	repo "travel-planner/internal/checklist/repository"
)

type itemDoc struct {
	ID        string    `bson:"_id"`
	TripID    string    `bson:"trip_id"`
	UserID    string    `bson:"user_id"`
	Name      string    `bson:"name"`
	Category  string    `bson:"category"`
	Packed    bool      `bson:"packed"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d itemDoc) toDomain() checklist.PackingItem {
	return checklist.PackingItem{
		ID:        d.ID,
		TripID:    d.TripID,
		UserID:    d.UserID,
		Name:      d.Name,
		Category:  checklist.ParseCategory(d.Category),
		Packed:    d.Packed,
		CreatedAt: d.CreatedAt,
	}
}

// CreateItems inserts all items in one round trip.
func (r *implRepository) CreateItems(ctx context.Context, opts []repo.CreateItemOptions) ([]checklist.PackingItem, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	docs := make([]any, len(opts))
	out := make([]checklist.PackingItem, len(opts))
	for i, opt := range opts {
		doc := itemDoc{
			ID:        uuid.NewString(),
			TripID:    opt.TripID,
			UserID:    opt.UserID,
			Name:      opt.Name,
			Category:  string(opt.Category),
			Packed:    opt.Packed,
			CreatedAt: opt.CreatedAt.UTC(),
		}
		docs[i] = doc
		out[i] = doc.toDomain()
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItems"), err)
		return nil, repo.ErrFailedToInsert
	}
	return out, nil
}

func buildListFilter(opt repo.ListItemsOptions) bson.M {
	filter := bson.M{"trip_id": opt.TripID, "user_id": opt.UserID}
	if opt.Category != "" {
		filter["category"] = string(opt.Category)
	}
	return filter
}

// ListItems returns the trip's items in insertion order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]checklist.PackingItem, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, buildListFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var out []checklist.PackingItem
	for cursor.Next(ctx) {
		var doc itemDoc
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpdatePacked flips the packed flag and returns the updated item.
func (r *implRepository) UpdatePacked(ctx context.Context, opt repo.UpdatePackedOptions) (checklist.PackingItem, error) {
	filter := bson.M{"_id": opt.ID, "trip_id": opt.TripID, "user_id": opt.UserID}
	update := bson.M{"$set": bson.M{"packed": opt.Packed}}
	findOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, findOpts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return checklist.PackingItem{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePacked"), err)
		return checklist.PackingItem{}, repo.ErrFailedToUpdate
	}
	return doc.toDomain(), nil
}
