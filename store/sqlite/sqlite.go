/*
Package sqlite provides the SQLite-backed persistence for shifts and tariffs.

PURPOSE:
  Implements the storage the HTTP layer needs: one driver's shift history
  and one tariff row per driver. The calculation engine itself never touches
  this package - it receives plain values and returns plain values.

KEY TABLES:
  shifts:   One row per recorded shift, keyed by owner
  tariffs:  One row per driver, replaced wholesale on save

OWNERSHIP:
  Every query filters by owner_id. There is no cross-owner read path; a
  driver's shifts and tariff are only ever fetched together with their own
  identifier.

DECIMAL STORAGE:
  Money and distance fields are stored as TEXT and parsed back through the
  engine's parse-or-zero helpers, so a malformed row degrades to zeroed
  figures instead of failing the whole listing.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/drivestat.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - earnings/: The pure calculation core these rows feed
  - api/handlers.go: The only caller
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/drivestat/earnings-engine/earnings"
)

// ErrNotFound is returned when a shift does not exist for the owner.
var ErrNotFound = errors.New("not found")

// Store implements shift and tariff persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Shifts, one row per recorded work shift
	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		date TEXT NOT NULL,
		orders INTEGER NOT NULL DEFAULT 0,
		distance TEXT NOT NULL DEFAULT '0',
		shift_type TEXT NOT NULL DEFAULT ''
	);

	-- Hot path: listing one driver's history newest-first
	CREATE INDEX IF NOT EXISTS idx_shifts_owner_date
		ON shifts(owner_id, date DESC);

	-- Tariffs, one row per driver, replaced wholesale on save
	CREATE TABLE IF NOT EXISTS tariffs (
		owner_id TEXT PRIMARY KEY,
		order_price TEXT NOT NULL,
		fuel_price TEXT NOT NULL,
		fuel_rate TEXT NOT NULL,
		min_salary_enabled INTEGER NOT NULL DEFAULT 0,
		min_salary_day TEXT NOT NULL,
		min_salary_evening TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFTS
// =============================================================================

// ListShifts returns all shifts for the owner, newest first.
func (s *Store) ListShifts(ctx context.Context, ownerID string) ([]earnings.ShiftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, orders, distance, shift_type
		FROM shifts WHERE owner_id = ?
		ORDER BY date DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []earnings.ShiftRecord
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

// GetShift returns a single shift owned by ownerID.
func (s *Store) GetShift(ctx context.Context, ownerID, shiftID string) (earnings.ShiftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, orders, distance, shift_type
		FROM shifts WHERE owner_id = ? AND id = ?`, ownerID, shiftID)

	shift, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return earnings.ShiftRecord{}, ErrNotFound
	}
	return shift, err
}

// AddShift inserts a new shift for the owner.
func (s *Store) AddShift(ctx context.Context, ownerID string, shift earnings.ShiftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (id, owner_id, date, orders, distance, shift_type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		shift.ID, ownerID, shift.Date.String(), shift.Orders,
		shift.Distance.String(), string(shift.Type))
	if err != nil {
		return fmt.Errorf("failed to add shift: %w", err)
	}
	return nil
}

// UpdateShift replaces the mutable fields of an existing shift.
func (s *Store) UpdateShift(ctx context.Context, ownerID string, shift earnings.ShiftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE shifts SET date = ?, orders = ?, distance = ?, shift_type = ?
		WHERE owner_id = ? AND id = ?`,
		shift.Date.String(), shift.Orders, shift.Distance.String(),
		string(shift.Type), ownerID, shift.ID)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return affectedOrNotFound(res)
}

// DeleteShift removes one shift owned by ownerID.
func (s *Store) DeleteShift(ctx context.Context, ownerID, shiftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE owner_id = ? AND id = ?`, ownerID, shiftID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return affectedOrNotFound(res)
}

// ClearShifts removes the owner's entire shift history.
func (s *Store) ClearShifts(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}
	return nil
}

// =============================================================================
// TARIFF
// =============================================================================

// GetTariff returns the owner's tariff, or the defaults (found=false) when
// the owner has never saved one.
func (s *Store) GetTariff(ctx context.Context, ownerID string) (tariff earnings.TariffConfig, found bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT order_price, fuel_price, fuel_rate,
		       min_salary_enabled, min_salary_day, min_salary_evening
		FROM tariffs WHERE owner_id = ?`, ownerID)

	var orderPrice, fuelPrice, fuelRate, minDay, minEvening string
	var minEnabled int
	err = row.Scan(&orderPrice, &fuelPrice, &fuelRate, &minEnabled, &minDay, &minEvening)
	if errors.Is(err, sql.ErrNoRows) {
		return earnings.DefaultTariff(), false, nil
	}
	if err != nil {
		return earnings.TariffConfig{}, false, fmt.Errorf("failed to get tariff: %w", err)
	}

	return earnings.TariffConfig{
		OrderPrice:       earnings.ParseDecimalOrZero(orderPrice),
		FuelPrice:        earnings.ParseDecimalOrZero(fuelPrice),
		FuelRate:         earnings.ParseDecimalOrZero(fuelRate),
		MinSalaryEnabled: minEnabled != 0,
		MinSalaryDay:     earnings.ParseDecimalOrZero(minDay),
		MinSalaryEvening: earnings.ParseDecimalOrZero(minEvening),
	}, true, nil
}

// SaveTariff replaces the owner's tariff wholesale. Last write wins.
func (s *Store) SaveTariff(ctx context.Context, ownerID string, tariff earnings.TariffConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	minEnabled := 0
	if tariff.MinSalaryEnabled {
		minEnabled = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tariffs
			(owner_id, order_price, fuel_price, fuel_rate,
			 min_salary_enabled, min_salary_day, min_salary_evening)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			order_price = excluded.order_price,
			fuel_price = excluded.fuel_price,
			fuel_rate = excluded.fuel_rate,
			min_salary_enabled = excluded.min_salary_enabled,
			min_salary_day = excluded.min_salary_day,
			min_salary_evening = excluded.min_salary_evening`,
		ownerID, tariff.OrderPrice.String(), tariff.FuelPrice.String(),
		tariff.FuelRate.String(), minEnabled,
		tariff.MinSalaryDay.String(), tariff.MinSalaryEvening.String())
	if err != nil {
		return fmt.Errorf("failed to save tariff: %w", err)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (earnings.ShiftRecord, error) {
	var shift earnings.ShiftRecord
	var date, distance, shiftType string

	if err := row.Scan(&shift.ID, &date, &shift.Orders, &distance, &shiftType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return earnings.ShiftRecord{}, err
		}
		return earnings.ShiftRecord{}, fmt.Errorf("failed to scan shift: %w", err)
	}

	// A malformed date leaves the zero date on the record rather than
	// dropping the row; an explicit report window then excludes it.
	if parsed, err := earnings.ParseDate(date); err == nil {
		shift.Date = parsed
	}
	shift.Distance = earnings.ParseDecimalOrZero(distance)
	shift.Type = earnings.ShiftType(shiftType)
	return shift, nil
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
