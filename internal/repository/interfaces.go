package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Record is implemented by every persisted entity through its embedded
// metadata struct.
type Record interface {
	GetID() string
	SetID(id string)
}

// RecordPtr ties a record's pointer type to its struct type so stores can
// allocate fresh values when decoding.
type RecordPtr[T any] interface {
	Record
	*T
}

// Store persists one record family. Insertion order is preserved by List;
// uniqueness of id is the only load-bearing invariant.
type Store[R Record] interface {
	// Assigns a fresh id, persists the record and returns it with the id set
	Create(ctx context.Context, rec R) (R, error)
	// Returns every record of the family in insertion order
	List(ctx context.Context) ([]R, error)
	// Returns the records matching the predicate, preserving order
	ListBy(ctx context.Context, match func(R) bool) ([]R, error)
	// Looks up a single record, ErrRecordNotFound when absent
	Get(ctx context.Context, id string) (R, error)
	// Applies a mutation to the stored record, ErrRecordNotFound when absent
	Update(ctx context.Context, id string, apply func(R)) (R, error)
	// Removes the record. Deleting an absent id is a no-op success
	Delete(ctx context.Context, id string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
