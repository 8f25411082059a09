package router

import (
	"context"

	"travel-planner/pkg/log"
)

// Router classifies an utterance into an intent.
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter scores utterances against weighted keyword sets.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	l          log.Logger
	categories []Category
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over DefaultCategories.
func New(l log.Logger) *KeywordRouter {
	return NewWithCategories(l, DefaultCategories())
}

// NewWithCategories creates a KeywordRouter over a custom table. Table order is the tie-break priority.
func NewWithCategories(l log.Logger, categories []Category) *KeywordRouter {
	return &KeywordRouter{
		l:          l,
		categories: categories,
	}
}
