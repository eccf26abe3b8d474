package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpillai/daytrack/internal/service"
	"github.com/rpillai/daytrack/pkg/entity"
)

type Server struct {
	mx       *chi.Mux
	services *ServicesList
}

type ServicesList struct {
	Goals            service.CompletableEntriesI[*entity.Goal]
	Tasks            service.CompletableEntriesI[*entity.Task]
	NegativeThoughts service.EntriesI[*entity.NegativeThought]
	PositiveThoughts service.EntriesI[*entity.PositiveThought]
	EnergyLogs       service.EntriesI[*entity.EnergyLog]
	WellnessLogs     service.EntriesI[*entity.WellnessLog]
	Communications   service.CompletableEntriesI[*entity.Communication]
	Entertainment    service.CompletableEntriesI[*entity.Entertainment]
	Technologies     service.EntriesI[*entity.Technology]
	Topics           service.EntriesI[*entity.Topic]
	Streaks          service.StreaksI
	Documents        service.DocumentsI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:       chi.NewMux(),
		services: servicesOptions,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	registerCompletableEntryRoutes[entity.Goal](s.mx, "/api/goals", s.services.Goals)
	registerCompletableEntryRoutes[entity.Task](s.mx, "/api/tasks", s.services.Tasks)
	registerEntryRoutes[entity.NegativeThought](s.mx, "/api/negative-thoughts", s.services.NegativeThoughts)
	registerEntryRoutes[entity.PositiveThought](s.mx, "/api/positive-thoughts", s.services.PositiveThoughts)
	registerEntryRoutes[entity.EnergyLog](s.mx, "/api/energy-logs", s.services.EnergyLogs)
	registerEntryRoutes[entity.WellnessLog](s.mx, "/api/wellness-logs", s.services.WellnessLogs)
	registerCompletableEntryRoutes[entity.Communication](s.mx, "/api/communications", s.services.Communications)
	registerCompletableEntryRoutes[entity.Entertainment](s.mx, "/api/entertainment", s.services.Entertainment)
	registerEntryRoutes[entity.Technology](s.mx, "/api/technologies", s.services.Technologies)
	registerEntryRoutes[entity.Topic](s.mx, "/api/topics", s.services.Topics)

	s.mx.Post("/api/streaks/increment", s.IncrementStreak)
	s.mx.Get("/api/streaks", s.GetStreaks)
	s.mx.Delete("/api/streaks/{id}", s.DeleteStreak)

	s.mx.Post("/api/college-documents", s.CreateCollegeDocument)
	s.mx.Get("/api/college-documents", s.GetCollegeDocuments)
	s.mx.Get("/api/college-documents/{id}", s.GetCollegeDocument)
	s.mx.Delete("/api/college-documents/{id}", s.DeleteCollegeDocument)

	s.mx.Post("/api/internship-documents", s.CreateInternship)
	s.mx.Get("/api/internship-documents", s.GetInternships)
	s.mx.Get("/api/internship-documents/{id}", s.GetInternship)
	s.mx.Delete("/api/internship-documents/{id}", s.DeleteInternship)

	s.mx.Post("/api/internship-files", s.CreateInternshipFile)
	s.mx.Get("/api/internship-files/{internshipId}", s.GetInternshipFiles)
	s.mx.Delete("/api/internship-files/{id}", s.DeleteInternshipFile)

	s.mx.Post("/api/certification-documents", s.CreateCertification)
	s.mx.Get("/api/certification-documents", s.GetCertifications)
	s.mx.Delete("/api/certification-documents/{id}", s.DeleteCertification)

	s.mx.Post("/api/document-links", s.CreateLink)
	s.mx.Get("/api/document-links", s.GetLinks)
	s.mx.Delete("/api/document-links/{id}", s.DeleteLink)
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
