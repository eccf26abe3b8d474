package api_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rpillai/daytrack/internal/api"
	"github.com/rpillai/daytrack/internal/blob"
	"github.com/rpillai/daytrack/internal/repository"
	"github.com/rpillai/daytrack/internal/service"
	"github.com/rpillai/daytrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// newTestServer wires the full route table onto in-memory stores with the
// inline blob strategy, close to how main assembles the real thing.
func newTestServer() *api.Server {
	documents := service.NewDocuments(service.DocumentStores{
		College:         repository.NewMemoryStore[*entity.CollegeDocument](),
		Internships:     repository.NewMemoryStore[*entity.Internship](),
		InternshipFiles: repository.NewMemoryStore[*entity.InternshipFile](),
		Certifications:  repository.NewMemoryStore[*entity.Certification](),
		Links:           repository.NewMemoryStore[*entity.DocumentLink](),
	}, blob.NewInlineBackend())
	return api.New(&api.ServicesList{
		Goals:            service.NewCompletableEntries(repository.NewMemoryStore[*entity.Goal]()),
		Tasks:            service.NewCompletableEntries(repository.NewMemoryStore[*entity.Task]()),
		NegativeThoughts: service.NewEntries(repository.NewMemoryStore[*entity.NegativeThought]()),
		PositiveThoughts: service.NewEntries(repository.NewMemoryStore[*entity.PositiveThought]()),
		EnergyLogs:       service.NewEntries(repository.NewMemoryStore[*entity.EnergyLog]()),
		WellnessLogs:     service.NewEntries(repository.NewMemoryStore[*entity.WellnessLog]()),
		Communications:   service.NewCompletableEntries(repository.NewMemoryStore[*entity.Communication]()),
		Entertainment:    service.NewCompletableEntries(repository.NewMemoryStore[*entity.Entertainment]()),
		Technologies:     service.NewEntries(repository.NewMemoryStore[*entity.Technology]()),
		Topics:           service.NewEntries(repository.NewMemoryStore[*entity.Topic]()),
		Streaks:          service.NewStreaks(repository.NewMemoryStore[*entity.Streak]()),
		Documents:        documents,
	})
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, sonic.ConfigDefault.NewDecoder(w.Body).Decode(dst))
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, fileData []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGoalRoutes(t *testing.T) {
	h := newTestServer().Handler()

	var created entity.Goal
	t.Run("create", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/goals", `{"date":"2024-06-01","title":"Run 5k"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		decodeBody(t, w, &created)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.Completed)
	})
	t.Run("create without title", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/goals", `{"date":"2024-06-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("create with broken body", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/goals", `{"date":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("toggle", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPatch, "/api/goals/"+created.ID+"/toggle", "")
		require.Equal(t, http.StatusOK, w.Code)
		var toggled entity.Goal
		decodeBody(t, w, &toggled)
		assert.True(t, toggled.Completed)
	})
	t.Run("toggle unexist", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPatch, "/api/goals/missing/toggle", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("list by date", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/goals", `{"date":"2024-06-02","title":"Stretch"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, h, http.MethodGet, "/api/goals?date=2024-06-01", "")
		require.Equal(t, http.StatusOK, w.Code)
		var goals []entity.Goal
		decodeBody(t, w, &goals)
		require.Len(t, goals, 1)
		assert.True(t, goals[0].Completed)
	})
	t.Run("list with bad date", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/goals?date=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("get unexist", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/goals/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("delete twice", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/api/goals/"+created.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, h, http.MethodDelete, "/api/goals/"+created.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStreakRoutes(t *testing.T) {
	h := newTestServer().Handler()

	t.Run("increment twice", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/streaks/increment", `{"kind":"meditation","date":"2024-06-01"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, h, http.MethodPost, "/api/streaks/increment", `{"kind":"meditation","date":"2024-06-01"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var streak entity.Streak
		decodeBody(t, w, &streak)
		assert.Equal(t, 2, streak.Count)
	})
	t.Run("missing kind", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/streaks/increment", `{"date":"2024-06-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("bad date", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/streaks/increment", `{"kind":"meditation","date":"June"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("list by date", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/streaks?date=2024-06-01", "")
		require.Equal(t, http.StatusOK, w.Code)
		var streaks []entity.Streak
		decodeBody(t, w, &streaks)
		require.Len(t, streaks, 1)
		assert.Equal(t, 2, streaks[0].Count)
	})
}

func TestCollegeDocumentRoutes(t *testing.T) {
	h := newTestServer().Handler()

	var created entity.CollegeDocument
	t.Run("upload", func(t *testing.T) {
		body, contentType := multipartUpload(t, map[string]string{"category": "transcript"}, "transcript.pdf", []byte("%PDF-1.4 test"))
		req := httptest.NewRequest(http.MethodPost, "/api/college-documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		decodeBody(t, w, &created)
		assert.Equal(t, "transcript.pdf", created.FileName)
		assert.NotEmpty(t, created.Data)
	})
	t.Run("upload without file", func(t *testing.T) {
		body, contentType := multipartUpload(t, map[string]string{"category": "transcript"}, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/college-documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Message string `json:"message"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, "No file uploaded", resp.Message)
	})
	t.Run("filter by category", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/college-documents?category=id_card", "")
		require.Equal(t, http.StatusOK, w.Code)
		var docs []entity.CollegeDocument
		decodeBody(t, w, &docs)
		assert.Empty(t, docs)

		w = doJSON(t, h, http.MethodGet, "/api/college-documents?category=transcript", "")
		require.Equal(t, http.StatusOK, w.Code)
		decodeBody(t, w, &docs)
		assert.Len(t, docs, 1)
	})
	t.Run("delete twice", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/api/college-documents/"+created.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, h, http.MethodDelete, "/api/college-documents/"+created.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInternshipCascadeRoutes(t *testing.T) {
	h := newTestServer().Handler()

	var internship entity.Internship
	w := doJSON(t, h, http.MethodPost, "/api/internship-documents", `{"internshipName":"ACME Corp"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &internship)

	t.Run("upload file", func(t *testing.T) {
		body, contentType := multipartUpload(t, map[string]string{
			"internshipId": internship.ID,
			"fileType":     "offer_letter",
		}, "offer.pdf", []byte("%PDF-1.4 offer"))
		req := httptest.NewRequest(http.MethodPost, "/api/internship-files", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})
	t.Run("upload to unexist internship", func(t *testing.T) {
		body, contentType := multipartUpload(t, map[string]string{
			"internshipId": "missing",
			"fileType":     "other",
		}, "offer.pdf", []byte("%PDF-1.4 offer"))
		req := httptest.NewRequest(http.MethodPost, "/api/internship-files", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("cascade delete", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/api/internship-documents/"+internship.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, h, http.MethodGet, "/api/internship-files/"+internship.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var files []entity.InternshipFile
		decodeBody(t, w, &files)
		assert.Empty(t, files)

		w = doJSON(t, h, http.MethodGet, "/api/internship-documents/"+internship.ID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLinkRoutes(t *testing.T) {
	h := newTestServer().Handler()

	t.Run("create", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/document-links", `{"title":"Scholarship portal","url":"https://example.com/apply"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var link entity.DocumentLink
		decodeBody(t, w, &link)
		assert.Equal(t, "", link.Description)
	})
	t.Run("create without url", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/api/document-links", `{"title":"Scholarship portal"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("list", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/api/document-links", "")
		require.Equal(t, http.StatusOK, w.Code)
		var links []entity.DocumentLink
		decodeBody(t, w, &links)
		assert.Len(t, links, 1)
	})
}
