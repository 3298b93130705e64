package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"thyroidrisk/domain/core"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/errors"
	"thyroidrisk/ports"
)

// loadRow mirrors one dataset_loads row. Notices travel as JSON text so lib/pq
// does not send them as bytea.
type loadRow struct {
	ID       string    `db:"id"`
	Source   string    `db:"source"`
	Rows     int       `db:"row_count"`
	Columns  int       `db:"column_count"`
	Notices  string    `db:"notices"`
	LoadedAt time.Time `db:"loaded_at"`
}

// loadRepository implements the LoadHistoryRepository interface
type loadRepository struct {
	db *sqlx.DB
}

// NewLoadRepository creates a new load history repository
func NewLoadRepository(db *sqlx.DB) ports.LoadHistoryRepository {
	return &loadRepository{db: db}
}

// Record inserts one successful load
func (r *loadRepository) Record(ctx context.Context, record *dataset.LoadRecord) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}

	query := `INSERT INTO dataset_loads (id, source, row_count, column_count, notices, loaded_at)
	VALUES (:id, :source, :row_count, :column_count, :notices, :loaded_at)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errors.DatabaseError("failed to record dataset load", err)
	}
	return nil
}

// ListRecent returns the newest loads first
func (r *loadRepository) ListRecent(ctx context.Context, limit int) ([]*dataset.LoadRecord, error) {
	query := `SELECT id, source, row_count, column_count, COALESCE(notices, '[]'::jsonb) AS notices, loaded_at
	FROM dataset_loads
	ORDER BY loaded_at DESC
	LIMIT $1`

	var rows []loadRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, errors.DatabaseError("failed to list dataset loads", err)
	}

	records := make([]*dataset.LoadRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func toRow(record *dataset.LoadRecord) (loadRow, error) {
	notices := record.Notices
	if notices == nil {
		notices = []string{}
	}
	noticesJSON, err := json.Marshal(notices)
	if err != nil {
		return loadRow{}, fmt.Errorf("failed to marshal notices: %w", err)
	}
	return loadRow{
		ID:       record.ID.String(),
		Source:   record.Source,
		Rows:     record.Rows,
		Columns:  record.Columns,
		Notices:  string(noticesJSON),
		LoadedAt: record.LoadedAt,
	}, nil
}

func (row loadRow) toRecord() (*dataset.LoadRecord, error) {
	id, err := core.ParseLoadID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "corrupt dataset_loads row")
	}

	notices := []string{}
	if len(row.Notices) > 0 {
		if err := json.Unmarshal([]byte(row.Notices), &notices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notices for load %s: %w", id, err)
		}
	}

	return &dataset.LoadRecord{
		ID:       id,
		Source:   row.Source,
		Rows:     row.Rows,
		Columns:  row.Columns,
		Notices:  notices,
		LoadedAt: row.LoadedAt,
	}, nil
}
