package mongo

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"travel-planner/internal/agent"
	repo "travel-planner/internal/agent/repository"
)

type turnDoc struct {
	ID        string    `bson:"_id"`
	SessionID string    `bson:"session_id"`
	UserID    string    `bson:"user_id"`
	Role      string    `bson:"role"`
	Content   string    `bson:"content"`
	Seq       int       `bson:"seq"` // position within one append
	CreatedAt time.Time `bson:"created_at"`
}

func (d turnDoc) toDomain() agent.Turn {
	return agent.Turn{Role: d.Role, Content: d.Content, CreatedAt: d.CreatedAt}
}

func sessionFilter(sessionID, userID string) bson.M {
	return bson.M{"session_id": sessionID, "user_id": userID}
}

// newestFirst orders turns so that a limit keeps the most recent ones.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}}

// LoadTurns reads the newest turns and returns them oldest first.
func (r *implRepository) LoadTurns(ctx context.Context, opt repo.LoadTurnsOptions) ([]agent.Turn, error) {
	findOpts := options.Find().SetSort(newestFirst)
	if opt.Limit > 0 {
		findOpts.SetLimit(int64(opt.Limit))
	}

	cursor, err := r.coll.Find(ctx, sessionFilter(opt.SessionID, opt.UserID), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadTurns"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var turns []agent.Turn
	for cursor.Next(ctx) {
		var doc turnDoc
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("LoadTurns"), err)
			return nil, repo.ErrFailedToList
		}
		turns = append(turns, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("LoadTurns"), err)
		return nil, repo.ErrFailedToList
	}

	slices.Reverse(turns)
	return turns, nil
}

func buildTurnDocs(opt repo.AppendTurnsOptions) []any {
	docs := make([]any, len(opt.Turns))
	for i, t := range opt.Turns {
		docs[i] = turnDoc{
			ID:        uuid.NewString(),
			SessionID: opt.SessionID,
			UserID:    opt.UserID,
			Role:      t.Role,
			Content:   t.Content,
			Seq:       i,
			CreatedAt: t.CreatedAt.UTC(),
		}
	}
	return docs
}

// AppendTurns inserts the turns in one round trip.
func (r *implRepository) AppendTurns(ctx context.Context, opt repo.AppendTurnsOptions) error {
	if len(opt.Turns) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, buildTurnDocs(opt)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendTurns"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ClearTurns deletes the whole conversation.
func (r *implRepository) ClearTurns(ctx context.Context, opt repo.ClearTurnsOptions) error {
	res, err := r.coll.DeleteMany(ctx, sessionFilter(opt.SessionID, opt.UserID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearTurns"), err)
		return repo.ErrFailedToDelete
	}
	r.l.Debugf(ctx, "%s: removed %d turns of %s", r.dsn("ClearTurns"), res.DeletedCount, opt.SessionID)
	return nil
}
