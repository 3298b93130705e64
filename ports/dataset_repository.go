package ports

import (
	"context"

	"thyroidrisk/domain/dataset"
)

// LoadHistoryRepository records dataset loads for the status API
type LoadHistoryRepository interface {
	Record(ctx context.Context, record *dataset.LoadRecord) error
	ListRecent(ctx context.Context, limit int) ([]*dataset.LoadRecord, error)
}
