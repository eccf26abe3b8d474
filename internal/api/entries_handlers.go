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
	"github.com/rpillai/daytrack/internal/service"
	"github.com/rpillai/daytrack/pkg/dateutil"
	"github.com/rpillai/daytrack/pkg/httputil"
)

// One handler set serves every day-scoped family; the record's own struct
// is the create payload, so validation tags stay on the entity.

func registerEntryRoutes[T any, R interface {
	service.DatedRecord
	*T
}](mx *chi.Mux, path string, svc service.EntriesI[R]) {
	mx.Post(path, createEntry[T, R](svc))
	mx.Get(path, listEntries(svc))
	mx.Get(path+"/{id}", getEntry(svc))
	mx.Delete(path+"/{id}", deleteEntry(svc))
}

func registerCompletableEntryRoutes[T any, R interface {
	service.CompletableRecord
	*T
}](mx *chi.Mux, path string, svc service.CompletableEntriesI[R]) {
	registerEntryRoutes[T, R](mx, path, svc)
	mx.Patch(path+"/{id}/toggle", toggleEntry(svc))
}

func createEntry[T any, R interface {
	service.DatedRecord
	*T
}](svc service.EntriesI[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		rec := R(new(T))
		defer r.Body.Close()
		err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(rec)
		if err != nil {
			logger.Error("create entry error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		created, err := svc.Add(ctx, rec)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidRecord) {
				logger.Error("create entry error: validation failed", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "record failed validation", err)
				return
			}
			logger.Error("create entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating record", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusCreated, created)
		logger.Info("entry created")
	}
}

func listEntries[R service.DatedRecord](svc service.EntriesI[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		var (
			records []R
			err     error
		)
		if day := r.URL.Query().Get("date"); day != "" {
			date, parseErr := time.Parse(dateutil.DayFormat, day)
			if parseErr != nil {
				logger.Error("list entries error: invalid date query param")
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected yyyy-MM-dd", nil)
				return
			}
			records, err = svc.ForDay(ctx, date)
		} else {
			records, err = svc.All(ctx)
		}
		if err != nil {
			logger.Error("list entries error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting records list", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, records)
	}
}

func getEntry[R service.DatedRecord](svc service.EntriesI[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		id := chi.URLParam(r, "id")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		rec, err := svc.Get(ctx, id)
		if err != nil {
			if errors.Is(err, errorvalues.ErrRecordNotFound) {
				logger.Error("get entry error: unexist record")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
				return
			}
			logger.Error("get entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting record", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, rec)
	}
}

func deleteEntry[R service.DatedRecord](svc service.EntriesI[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		id := chi.URLParam(r, "id")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		err := svc.Remove(ctx, id)
		if err != nil {
			logger.Error("delete entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting record", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
		logger.Info("entry deleted")
	}
}

func toggleEntry[R service.CompletableRecord](svc service.CompletableEntriesI[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		id := chi.URLParam(r, "id")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		rec, err := svc.ToggleDone(ctx, id)
		if err != nil {
			if errors.Is(err, errorvalues.ErrRecordNotFound) {
				logger.Error("toggle entry error: unexist record")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
				return
			}
			logger.Error("toggle entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling record", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, rec)
		logger.Info("entry toggled")
	}
}
