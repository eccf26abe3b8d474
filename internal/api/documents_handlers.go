package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/internal/service"
	"github.com/rpillai/daytrack/pkg/entity"
	"github.com/rpillai/daytrack/pkg/httputil"
)

// Slightly above the blob size cap so oversize uploads reach the backend's
// own validation instead of dying in the multipart parser.
const maxUploadMemory = 12 << 20

type CreateInternshipRequest struct {
	InternshipName string `json:"internshipName"`
}

type CreateLinkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func readUpload(r *http.Request) (service.Upload, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return service.Upload{}, errorvalues.ErrNoFile
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return service.Upload{}, errorvalues.ErrNoFile
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return service.Upload{}, errors.New("reading uploaded file error: " + err.Error())
	}
	return service.Upload{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

// writeUploadError maps catalog errors to the shared response shape.
func writeUploadError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrNoFile):
		logger.Error(action + " error: no file uploaded")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "No file uploaded", nil)
	case errors.Is(err, errorvalues.ErrFileTypeNotAllowed):
		logger.Error(action + " error: disallowed file type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "file type isn't allowed", nil)
	case errors.Is(err, errorvalues.ErrFileTooLarge):
		logger.Error(action + " error: file too large")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "file exceeds the size limit", nil)
	case errors.Is(err, errorvalues.ErrInvalidRecord):
		logger.Error(action+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "record failed validation", err)
	case errors.Is(err, errorvalues.ErrRecordNotFound):
		logger.Error(action + " error: unexist record")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling document", nil)
	}
}

func (s *Server) CreateCollegeDocument(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	up, err := readUpload(r)
	if err != nil {
		writeUploadError(w, logger, "create college document", err)
		return
	}
	category := r.FormValue("category")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	doc, err := s.services.Documents.AddCollegeDocument(ctx, category, up)
	if err != nil {
		writeUploadError(w, logger, "create college document", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, doc)
	logger.Info("college document created")
}

func (s *Server) GetCollegeDocuments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var (
		docs []*entity.CollegeDocument
		err  error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		docs, err = s.services.Documents.CollegeDocumentsByCategory(ctx, category)
	} else {
		docs, err = s.services.Documents.CollegeDocuments(ctx)
	}
	if err != nil {
		logger.Error("get college documents error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting documents list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, docs)
}

func (s *Server) GetCollegeDocument(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	doc, err := s.services.Documents.CollegeDocument(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			logger.Error("get college document error: unexist record")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
			return
		}
		logger.Error("get college document error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting document", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, doc)
}

func (s *Server) DeleteCollegeDocument(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	err := s.services.Documents.RemoveCollegeDocument(ctx, id)
	if err != nil {
		logger.Error("delete college document error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting document", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("college document deleted")
}

func (s *Server) CreateInternship(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateInternshipRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create internship error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	internship, err := s.services.Documents.AddInternship(ctx, req.InternshipName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidRecord) {
			logger.Error("create internship error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "record failed validation", err)
			return
		}
		logger.Error("create internship error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating internship", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, internship)
	logger.Info("internship created")
}

func (s *Server) GetInternships(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	internships, err := s.services.Documents.Internships(ctx)
	if err != nil {
		logger.Error("get internships error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting internships list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, internships)
}

func (s *Server) GetInternship(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	internship, err := s.services.Documents.Internship(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			logger.Error("get internship error: unexist record")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
			return
		}
		logger.Error("get internship error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting internship", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, internship)
}

func (s *Server) DeleteInternship(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	// Cascade may touch many blobs
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()
	err := s.services.Documents.RemoveInternship(ctx, id)
	if err != nil {
		logger.Error("delete internship error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting internship", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("internship deleted")
}

func (s *Server) CreateInternshipFile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	up, err := readUpload(r)
	if err != nil {
		writeUploadError(w, logger, "create internship file", err)
		return
	}
	internshipID := r.FormValue("internshipId")
	fileType := entity.FileType(r.FormValue("fileType"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	file, err := s.services.Documents.AddInternshipFile(ctx, internshipID, fileType, up)
	if err != nil {
		writeUploadError(w, logger, "create internship file", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, file)
	logger.Info("internship file created")
}

func (s *Server) GetInternshipFiles(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	internshipID := chi.URLParam(r, "internshipId")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	files, err := s.services.Documents.InternshipFiles(ctx, internshipID)
	if err != nil {
		logger.Error("get internship files error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting files list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, files)
}

func (s *Server) DeleteInternshipFile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	err := s.services.Documents.RemoveInternshipFile(ctx, id)
	if err != nil {
		logger.Error("delete internship file error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting file", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("internship file deleted")
}

func (s *Server) CreateCertification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	up, err := readUpload(r)
	if err != nil {
		writeUploadError(w, logger, "create certification", err)
		return
	}
	name := r.FormValue("name")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	cert, err := s.services.Documents.AddCertification(ctx, name, up)
	if err != nil {
		writeUploadError(w, logger, "create certification", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, cert)
	logger.Info("certification created")
}

func (s *Server) GetCertifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	certs, err := s.services.Documents.Certifications(ctx)
	if err != nil {
		logger.Error("get certifications error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting certifications list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, certs)
}

func (s *Server) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	err := s.services.Documents.RemoveCertification(ctx, id)
	if err != nil {
		logger.Error("delete certification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting certification", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("certification deleted")
}

func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateLinkRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create link error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	link, err := s.services.Documents.AddLink(ctx, req.Title, req.URL, req.Description)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidRecord) {
			logger.Error("create link error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "record failed validation", err)
			return
		}
		logger.Error("create link error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating link", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, link)
	logger.Info("link created")
}

func (s *Server) GetLinks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	links, err := s.services.Documents.Links(ctx)
	if err != nil {
		logger.Error("get links error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting links list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, links)
}

func (s *Server) DeleteLink(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.services.Documents.RemoveLink(ctx, id)
	if err != nil {
		logger.Error("delete link error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting link", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("link deleted")
}
