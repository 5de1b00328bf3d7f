// Package postgresledger implements the ledger port on PostgreSQL via
// GORM. Every workflow record is a single row in ledger_entries keyed by
// its ledger key, so the per-key last-writer-wins contract maps directly
// onto row-level upserts.
package postgresledger

import (
	"context"
	"errors"

	"tradefinance/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerEntryDTO is the row shape of a ledger entry.
type LedgerEntryDTO struct {
	K string `gorm:"primaryKey;column:k"`
	V []byte `gorm:"column:v"`
}

// TableName implements the GORM table naming convention.
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

// PostgresLedger is a PostgreSQL-backed key-value ledger.
type PostgresLedger struct {
	db *gorm.DB
}

// NewPostgresLedger creates a ledger over an open GORM connection.
func NewPostgresLedger(db *gorm.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

var _ ports.Ledger = (*PostgresLedger)(nil)

// Migrate creates or updates the ledger_entries table.
func (l *PostgresLedger) Migrate() error {
	return l.db.AutoMigrate(&LedgerEntryDTO{})
}

// Get returns the value stored under key.
func (l *PostgresLedger) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var dto LedgerEntryDTO
	result := l.db.WithContext(ctx).First(&dto, "k = ?", key)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if result.Error != nil {
		return nil, false, result.Error
	}
	return dto.V, true, nil
}

// Put stores value under key, overwriting any existing row.
func (l *PostgresLedger) Put(ctx context.Context, key string, value []byte) error {
	dto := LedgerEntryDTO{K: key, V: value}
	result := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&dto)
	return result.Error
}

// Range returns entries with keys in [startKey, endKey) ordered by key.
// The result set is read in one query, so the iterator sees a consistent
// snapshot.
func (l *PostgresLedger) Range(ctx context.Context, startKey, endKey string) (ports.LedgerIterator, error) {
	query := l.db.WithContext(ctx).Model(&LedgerEntryDTO{}).Order("k")
	if startKey != "" {
		query = query.Where("k >= ?", startKey)
	}
	if endKey != "" {
		query = query.Where("k < ?", endKey)
	}

	var dtos []LedgerEntryDTO
	if result := query.Find(&dtos); result.Error != nil {
		return nil, result.Error
	}

	return &rowIterator{rows: dtos, pos: -1}, nil
}

type rowIterator struct {
	rows []LedgerEntryDTO
	pos  int
}

func (it *rowIterator) Next() bool {
	if it.pos+1 >= len(it.rows) {
		return false
	}
	it.pos++
	return true
}

func (it *rowIterator) Key() string {
	return it.rows[it.pos].K
}

func (it *rowIterator) Value() []byte {
	return it.rows[it.pos].V
}

func (it *rowIterator) Err() error {
	return nil
}

func (it *rowIterator) Close() error {
	return nil
}
