package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"travel-planner/internal/expense"
	repo "travel-planner/internal/expense/repository"
)

type expenseDoc struct {
	ID               string    `bson:"_id"`
	TripID           string    `bson:"trip_id"`
	UserID           string    `bson:"user_id"`
	Description      string    `bson:"description"`
	Amount           float64   `bson:"amount"`
	Category         string    `bson:"category"`
	OriginalCurrency string    `bson:"original_currency"`
	OriginalAmount   float64   `bson:"original_amount"`
	Rate             float64   `bson:"rate"`
	CreatedAt        time.Time `bson:"created_at"`
}

func (d expenseDoc) toDomain() expense.Expense {
	return expense.Expense{
		ID:               d.ID,
		TripID:           d.TripID,
		UserID:           d.UserID,
		Description:      d.Description,
		Amount:           d.Amount,
		Category:         expense.ParseCategory(d.Category),
		OriginalCurrency: d.OriginalCurrency,
		OriginalAmount:   d.OriginalAmount,
		Rate:             d.Rate,
		CreatedAt:        d.CreatedAt,
	}
}

// CreateExpense inserts a new expense document.
func (r *implRepository) CreateExpense(ctx context.Context, opt repo.CreateExpenseOptions) (expense.Expense, error) {
	doc := expenseDoc{
		ID:               uuid.NewString(),
		TripID:           opt.TripID,
		UserID:           opt.UserID,
		Description:      opt.Description,
		Amount:           opt.Amount,
		Category:         string(opt.Category),
		OriginalCurrency: opt.OriginalCurrency,
		OriginalAmount:   opt.OriginalAmount,
		Rate:             opt.Rate,
		CreatedAt:        opt.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateExpense"), err)
		return expense.Expense{}, repo.ErrFailedToInsert
	}
	return doc.toDomain(), nil
}

// ListExpenses returns the trip's expenses for one owner, oldest first.
func (r *implRepository) ListExpenses(ctx context.Context, opt repo.ListExpensesOptions) ([]expense.Expense, error) {
	filter := bson.M{"trip_id": opt.TripID, "user_id": opt.UserID}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExpenses"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var out []expense.Expense
	for cursor.Next(ctx) {
		var doc expenseDoc
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListExpenses"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListExpenses"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
