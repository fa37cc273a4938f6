package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	intdb "tripplanner/internal/db"
)

// TripPayloadRepository reads raw trip-detail payloads from MySQL and persists
// the latest engine snapshot. The engine itself owns no storage; this is the
// persistence collaborator it talks to.
type TripPayloadRepository struct {
	DB *sql.DB
}

// FetchTrip loads the newest stored payload for a trip. The document column
// carries the loosely-typed JSON exactly as the remote endpoint would return it.
func (r TripPayloadRepository) FetchTrip(ctx context.Context, tripID string) (*models.TripPayload, error) {
	if r.DB == nil {
		return nil, domain.InternalError{Msg: "database not configured"}
	}
	if !intdb.HasTable(r.DB, "trip_payloads") {
		return nil, domain.NotFoundError{Resource: "trip payload"}
	}

	var raw []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT document
		FROM trip_payloads
		WHERE trip_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, tripID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "trip payload"}
		}
		return nil, domain.InternalError{Msg: "failed to load trip payload", Err: err}
	}

	var payload models.TripPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domain.InternalError{Msg: "stored trip payload is not valid JSON", Err: err}
	}
	return &payload, nil
}

// SaveSnapshot upserts the latest document version for a trip. Missing table
// is not an error; snapshotting is optional infrastructure.
func (r TripPayloadRepository) SaveSnapshot(tripID string, doc models.TripDocument) error {
	if r.DB == nil {
		return nil
	}
	if !intdb.HasTable(r.DB, "trip_snapshots") {
		return nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode trip snapshot", Err: err}
	}

	_, err = r.DB.Exec(`
		INSERT INTO trip_snapshots (trip_id, document, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE document = VALUES(document), updated_at = NOW()
	`, tripID, raw)
	if err != nil {
		return domain.InternalError{Msg: "failed to save trip snapshot", Err: err}
	}
	return nil
}
