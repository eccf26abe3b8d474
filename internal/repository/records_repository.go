package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/pkg/cleanup"
)

// RecordsRepository stores one record family in the shared records table.
// Records live as JSONB payloads; position keeps insertion order.
type RecordsRepository[T any, R RecordPtr[T]] struct {
	conn   PgConnection
	family string
}

func NewRecordsRepo[T any, R RecordPtr[T]](cfg DBConfig, family string) *RecordsRepository[T, R] {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for recordsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool for " + family,
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RecordsRepository[T, R]{
		conn:   pool,
		family: family,
	}
}

func NewRecordsRepoWithConn[T any, R RecordPtr[T]](conn PgConnection, family string) *RecordsRepository[T, R] {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for recordsRepo: " + err.Error())
	}
	return &RecordsRepository[T, R]{
		conn:   conn,
		family: family,
	}
}

func (rr *RecordsRepository[T, R]) Create(ctx context.Context, rec R) (R, error) {
	var zero R
	rec.SetID(uuid.NewString())
	payload, err := sonic.ConfigDefault.Marshal(rec)
	if err != nil {
		return zero, errors.New("marshalling record error: " + err.Error())
	}
	_, err = rr.conn.Exec(ctx, `INSERT INTO records (id, family, payload) VALUES ($1, $2, $3);`,
		rec.GetID(),
		rr.family,
		payload,
	)
	if err != nil {
		return zero, errors.New("creating record db error: " + err.Error())
	}
	return rec, nil
}

func (rr *RecordsRepository[T, R]) List(ctx context.Context) ([]R, error) {
	records := make([]R, 0)
	rows, err := rr.conn.Query(ctx, `SELECT payload FROM records WHERE family = $1 ORDER BY position;`, rr.family)
	if err != nil {
		return nil, errors.New("listing records error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, errors.New("scanning record row error: " + err.Error())
		}
		rec := R(new(T))
		if err = sonic.ConfigDefault.Unmarshal(payload, rec); err != nil {
			return nil, errors.New("unmarshalling record error: " + err.Error())
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return records, nil
}

// ListBy scans the whole family and filters in memory; collections are
// assumed small enough for full scans.
func (rr *RecordsRepository[T, R]) ListBy(ctx context.Context, match func(R) bool) ([]R, error) {
	all, err := rr.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]R, 0)
	for _, rec := range all {
		if match(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (rr *RecordsRepository[T, R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	row := rr.conn.QueryRow(ctx, `SELECT payload FROM records WHERE family = $1 AND id = $2;`, rr.family, id)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errorvalues.ErrRecordNotFound
		}
		return zero, errors.New("getting record by id error: " + err.Error())
	}
	rec := R(new(T))
	if err := sonic.ConfigDefault.Unmarshal(payload, rec); err != nil {
		return zero, errors.New("unmarshalling record error: " + err.Error())
	}
	return rec, nil
}

func (rr *RecordsRepository[T, R]) Update(ctx context.Context, id string, apply func(R)) (R, error) {
	var zero R
	rec, err := rr.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	apply(rec)
	payload, err := sonic.ConfigDefault.Marshal(rec)
	if err != nil {
		return zero, errors.New("marshalling record error: " + err.Error())
	}
	ct, err := rr.conn.Exec(ctx, `UPDATE records SET payload = $1 WHERE family = $2 AND id = $3;`,
		payload, rr.family, id,
	)
	if err != nil {
		return zero, errors.New("error updating record: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return zero, errorvalues.ErrRecordNotFound
	}
	return rec, nil
}

// Delete removes the record if present. A missing id is a success, so
// repeated deletes never fail.
func (rr *RecordsRepository[T, R]) Delete(ctx context.Context, id string) error {
	_, err := rr.conn.Exec(ctx, `DELETE FROM records WHERE family = $1 AND id = $2;`, rr.family, id)
	if err != nil {
		return errors.New("error deleting record: " + err.Error())
	}
	return nil
}
