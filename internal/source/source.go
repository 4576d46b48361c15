// Define an interface for all job sources
// Each source normalizes its own raw records and stays independent,
// communicating with integration only through its staging file

package source

import (
	"context"
	"time"

	"go-aisociety-jobs/internal/models"
)

// QueryPause is the cooperative delay between successive external queries
const QueryPause = 1 * time.Second

// QueryTimeout bounds every single external call
const QueryTimeout = 15 * time.Second

// Source defines the interface that all job sources must implement
type Source interface {
	//Fetch normalized jobs from the source
	Fetch(ctx context.Context) ([]models.Job, error)

	//Name is the source name used for the staging file (linkedin, rss, ...)
	Name() string
}

// Pace sleeps the inter-query pause, returning early on context cancellation
func Pace(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(QueryPause):
		return nil
	}
}
