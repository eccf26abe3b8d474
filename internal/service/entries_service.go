package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/internal/repository"
	"github.com/rpillai/daytrack/pkg/dateutil"
)

// DatedRecord is any record carrying the day-scoped metadata.
type DatedRecord interface {
	repository.Record
	Day() string
}

// CompletableRecord additionally carries the completed flag.
type CompletableRecord interface {
	DatedRecord
	Toggle()
}

// Entries serves one day-scoped record family on top of a Store.
type Entries[R DatedRecord] struct {
	repo repository.Store[R]
}

func NewEntries[R DatedRecord](repo repository.Store[R]) *Entries[R] {
	if repo == nil {
		log.Fatal("provided nil records repo")
	}
	return &Entries[R]{
		repo: repo,
	}
}

func (es *Entries[R]) Add(ctx context.Context, rec R) (R, error) {
	var zero R
	rec.SetID("")
	if err := validate.Struct(rec); err != nil {
		return zero, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	created, err := es.repo.Create(ctx, rec)
	if err != nil {
		return zero, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (es *Entries[R]) All(ctx context.Context) ([]R, error) {
	records, err := es.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return records, nil
}

// ForDay narrows the family to the reference date's calendar day.
func (es *Entries[R]) ForDay(ctx context.Context, date time.Time) ([]R, error) {
	records, err := es.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return dateutil.FilterByDay(records, date), nil
}

func (es *Entries[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	rec, err := es.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return zero, err
		}
		return zero, fmt.Errorf("records repository error: %s", err.Error())
	}
	return rec, nil
}

func (es *Entries[R]) Remove(ctx context.Context, id string) error {
	err := es.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

// CompletableEntries extends Entries with the toggle mutation for families
// that carry a completed flag.
type CompletableEntries[R CompletableRecord] struct {
	*Entries[R]
}

func NewCompletableEntries[R CompletableRecord](repo repository.Store[R]) *CompletableEntries[R] {
	return &CompletableEntries[R]{
		Entries: NewEntries(repo),
	}
}

func (ce *CompletableEntries[R]) ToggleDone(ctx context.Context, id string) (R, error) {
	var zero R
	rec, err := ce.repo.Update(ctx, id, func(r R) {
		r.Toggle()
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return zero, err
		}
		return zero, fmt.Errorf("records repository error: %s", err.Error())
	}
	return rec, nil
}
