package repositories

import (
	"context"
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectPayloadTable(mock sqlmock.Sqlmock, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow("trip_payloads")
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs("trip_payloads").WillReturnRows(rows)
}

func TestFetchTripReadsLatestPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectPayloadTable(mock, true)
	raw := `{"name":"Jordan by Rail","travelers":3,"cityStops":[{"id":7,"name":"Amman"}]}`
	mock.ExpectQuery("SELECT document").WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(raw)))

	repo := TripPayloadRepository{DB: db}
	payload, err := repo.FetchTrip(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("FetchTrip returned error: %v", err)
	}
	if payload.Name == nil || *payload.Name != "Jordan by Rail" {
		t.Fatalf("payload name not decoded: %+v", payload)
	}
	if payload.Travelers == nil || *payload.Travelers != 3 {
		t.Fatalf("payload travelers not decoded: %+v", payload)
	}
	// numeric ids are tolerated on the wire
	if string(payload.CityStops[0].ID) != "7" {
		t.Fatalf("numeric id not coerced, got %q", payload.CityStops[0].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFetchTripMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectPayloadTable(mock, true)
	mock.ExpectQuery("SELECT document").WithArgs("trip-404").
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	repo := TripPayloadRepository{DB: db}
	if _, err := repo.FetchTrip(context.Background(), "trip-404"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFetchTripMissingTableIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectPayloadTable(mock, false)

	repo := TripPayloadRepository{DB: db}
	if _, err := repo.FetchTrip(context.Background(), "trip-1"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSaveSnapshotUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trip_snapshots").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trip_snapshots"))
	mock.ExpectExec("INSERT INTO trip_snapshots").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := TripPayloadRepository{DB: db}
	doc := models.TripDocument{ID: "trip-1", Title: "Highlights of Jordan"}
	if err := repo.SaveSnapshot("trip-1", doc); err != nil {
		t.Fatalf("SaveSnapshot returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveSnapshotSkipsWhenTableMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trip_snapshots").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	repo := TripPayloadRepository{DB: db}
	if err := repo.SaveSnapshot("trip-1", models.TripDocument{ID: "trip-1"}); err != nil {
		t.Fatalf("missing snapshot table must not be an error, got %v", err)
	}
}
