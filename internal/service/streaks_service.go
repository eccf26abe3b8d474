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
	"github.com/rpillai/daytrack/pkg/entity"
)

// Streaks keeps one counter record per (kind, day). Incrementing bumps the
// existing record in place instead of appending a new one.
type Streaks struct {
	repo repository.Store[*entity.Streak]
}

func NewStreaks(repo repository.Store[*entity.Streak]) *Streaks {
	if repo == nil {
		log.Fatal("provided nil streaks repo")
	}
	return &Streaks{
		repo: repo,
	}
}

func (ss *Streaks) Increment(ctx context.Context, kind string, date time.Time) (*entity.Streak, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: kind is required", errorvalues.ErrInvalidRecord)
	}
	day := dateutil.DayString(date)
	existing, err := ss.repo.ListBy(ctx, func(st *entity.Streak) bool {
		return st.Kind == kind && st.Date == day
	})
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	if len(existing) > 0 {
		streak, err := ss.repo.Update(ctx, existing[0].GetID(), func(st *entity.Streak) {
			st.Count++
		})
		if err != nil {
			if errors.Is(err, errorvalues.ErrRecordNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("records repository error: %s", err.Error())
		}
		return streak, nil
	}
	streak, err := ss.repo.Create(ctx, &entity.Streak{
		Dated: entity.Dated{Date: day},
		Kind:  kind,
		Count: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return streak, nil
}

func (ss *Streaks) All(ctx context.Context) ([]*entity.Streak, error) {
	streaks, err := ss.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return streaks, nil
}

func (ss *Streaks) ForDay(ctx context.Context, date time.Time) ([]*entity.Streak, error) {
	streaks, err := ss.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return dateutil.FilterByDay(streaks, date), nil
}

func (ss *Streaks) Remove(ctx context.Context, id string) error {
	err := ss.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}
