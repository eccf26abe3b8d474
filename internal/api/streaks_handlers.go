package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/pkg/dateutil"
	"github.com/rpillai/daytrack/pkg/entity"
	"github.com/rpillai/daytrack/pkg/httputil"
)

type IncrementStreakRequest struct {
	Kind string `json:"kind"`
	Date string `json:"date"`
}

func (s *Server) IncrementStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req IncrementStreakRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("increment streak error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := time.Parse(dateutil.DayFormat, req.Date)
	if err != nil {
		logger.Error("increment streak error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected yyyy-MM-dd", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.services.Streaks.Increment(ctx, req.Kind, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidRecord):
			logger.Error("increment streak error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "record failed validation", err)
		case errors.Is(err, errorvalues.ErrRecordNotFound):
			// Lost a race with a concurrent delete; surface as not found
			logger.Error("increment streak error: unexist record")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
		default:
			logger.Error("increment streak error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while incrementing streak", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
	logger.Info("streak incremented")
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var (
		streaks []*entity.Streak
		err     error
	)
	if day := r.URL.Query().Get("date"); day != "" {
		date, parseErr := time.Parse(dateutil.DayFormat, day)
		if parseErr != nil {
			logger.Error("get streaks error: invalid date query param")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected yyyy-MM-dd", nil)
			return
		}
		streaks, err = s.services.Streaks.ForDay(ctx, date)
	} else {
		streaks, err = s.services.Streaks.All(ctx)
	}
	if err != nil {
		logger.Error("get streaks error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streaks list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streaks)
}

func (s *Server) DeleteStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.services.Streaks.Remove(ctx, id)
	if err != nil {
		logger.Error("delete streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("streak deleted")
}
