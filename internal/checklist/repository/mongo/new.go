package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"travel-planner/internal/checklist/repository"
	"travel-planner/pkg/log"
	"travel-planner/pkg/mongodb"
)

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a MongoDB-backed Repository for packing items.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("checklist/repository/mongo: db is required")
	}
	return &implRepository{coll: db.Collection(mongodb.CollectionPackingItems), l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("checklist/repository/mongo.%s", method)
}
