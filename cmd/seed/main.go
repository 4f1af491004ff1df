// Command seed inserts the sample Vietnam trip and its day-by-day itinerary.
// It loads .env, needs DATABASE_URL and expects the schema to be migrated.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// migrationHint is printed when the trips table does not exist yet.
const migrationHint = `The trips table does not exist. Apply the migrations first, either by
starting the API server with MIGRATE_ON_START=true or with:

    goose -dir migrations postgres "$DATABASE_URL" up`

// errSchemaMissing reports that the trips table is absent.
var errSchemaMissing = errors.New("trips table does not exist")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(); err != nil {
		slog.Error("load .env", "error", err)
		os.Exit(1)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		err := &domain.ConfigurationError{Missing: []string{"DATABASE_URL"}}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	id, err := seed(ctx, pool)
	switch {
	case errors.Is(err, errSchemaMissing):
		fmt.Fprintln(os.Stderr, migrationHint)
		os.Exit(1)
	case err != nil:
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Vietnam trip added successfully", "trip_id", id)
}

// seed checks the schema and inserts the trip with its itinerary in one
// transaction.
func seed(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	if err := checkSchema(ctx, pool); err != nil {
		return "", err
	}

	trip, stops := vietnamTrip()
	var id string
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		created, err := repo.NewTripRepo(tx).Create(ctx, trip)
		if err != nil {
			return err
		}
		activities := repo.NewActivityTable(tx)
		for _, a := range itinerary(created.ID, stops) {
			if _, err := activities.Insert(ctx, a); err != nil {
				return fmt.Errorf("stop %s: %w", a.Date.Format(time.DateOnly), err)
			}
		}
		id = created.ID.String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("seed: %w", err)
	}
	return id, nil
}

func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var one int
	err := pool.QueryRow(ctx, `SELECT 1 FROM trips LIMIT 1`).Scan(&one)
	switch {
	case repo.IsUndefinedTable(err):
		return errSchemaMissing
	case err != nil && !errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("check trips table: %w", err)
	}
	slog.Info("trips table exists")
	return nil
}
