package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"travel-planner/internal/itinerary"
	repo "travel-planner/internal/itinerary/repository"
)

type itemDoc struct {
	ID              string    `bson:"_id"`
	TripID          string    `bson:"trip_id"`
	UserID          string    `bson:"user_id"`
	Title           string    `bson:"title"`
	Type            string    `bson:"type"`
	Location        string    `bson:"location,omitempty"`
	StartTime       time.Time `bson:"start_time"`
	EndTime         time.Time `bson:"end_time"`
	Notes           string    `bson:"notes,omitempty"`
	CalendarEventID string    `bson:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
}

func (d itemDoc) toDomain() itinerary.Item {
	return itinerary.Item{
		ID:              d.ID,
		TripID:          d.TripID,
		UserID:          d.UserID,
		Title:           d.Title,
		Type:            itinerary.ParseItemType(d.Type),
		Location:        d.Location,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Notes:           d.Notes,
		CalendarEventID: d.CalendarEventID,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (itinerary.Item, error) {
	doc := itemDoc{
		ID:              uuid.NewString(),
		TripID:          opt.TripID,
		UserID:          opt.UserID,
		Title:           opt.Title,
		Type:            string(opt.Type),
		Location:        opt.Location,
		StartTime:       opt.StartTime.UTC(),
		EndTime:         opt.EndTime.UTC(),
		Notes:           opt.Notes,
		CalendarEventID: opt.CalendarEventID,
		CreatedAt:       opt.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return itinerary.Item{}, repo.ErrFailedToInsert
	}
	return doc.toDomain(), nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]itinerary.Item, error) {
	cursor, err := r.coll.Find(ctx, buildListFilter(opt), options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var out []itinerary.Item
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

func buildListFilter(opt repo.ListItemsOptions) bson.M {
	filter := bson.M{"trip_id": opt.TripID, "user_id": opt.UserID}

	timeRange := bson.M{}
	if !opt.From.IsZero() {
		timeRange["$gte"] = opt.From.UTC()
	}
	if !opt.To.IsZero() {
		timeRange["$lt"] = opt.To.UTC()
	}
	if len(timeRange) > 0 {
		filter["start_time"] = timeRange
	}
	if opt.Type != "" {
		filter["type"] = string(opt.Type)
	}
	return filter
}
