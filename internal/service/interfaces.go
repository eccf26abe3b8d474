package service

import (
	"context"
	"time"

	"github.com/rpillai/daytrack/pkg/entity"
)

type EntriesI[R DatedRecord] interface {
	// Validates the record, stamps a fresh id and persists it
	Add(ctx context.Context, rec R) (R, error)
	// Lists every record of the family in insertion order
	All(ctx context.Context) ([]R, error)
	// Lists the records whose date matches the reference day
	ForDay(ctx context.Context, date time.Time) ([]R, error)
	// Looks up a single record by id
	Get(ctx context.Context, id string) (R, error)
	// Deletes a record. Missing ids are a no-op
	Remove(ctx context.Context, id string) error
}

type CompletableEntriesI[R CompletableRecord] interface {
	EntriesI[R]
	// Flips the completed flag in place
	ToggleDone(ctx context.Context, id string) (R, error)
}

type StreaksI interface {
	// Bumps the counter for (kind, day), creating the record on first use
	Increment(ctx context.Context, kind string, date time.Time) (*entity.Streak, error)
	All(ctx context.Context) ([]*entity.Streak, error)
	ForDay(ctx context.Context, date time.Time) ([]*entity.Streak, error)
	Remove(ctx context.Context, id string) error
}

type DocumentsI interface {
	AddCollegeDocument(ctx context.Context, category string, up Upload) (*entity.CollegeDocument, error)
	CollegeDocuments(ctx context.Context) ([]*entity.CollegeDocument, error)
	CollegeDocumentsByCategory(ctx context.Context, category string) ([]*entity.CollegeDocument, error)
	CollegeDocument(ctx context.Context, id string) (*entity.CollegeDocument, error)
	RemoveCollegeDocument(ctx context.Context, id string) error

	AddInternship(ctx context.Context, name string) (*entity.Internship, error)
	Internships(ctx context.Context) ([]*entity.Internship, error)
	Internship(ctx context.Context, id string) (*entity.Internship, error)
	// Cascades over the container's files before removing the container
	RemoveInternship(ctx context.Context, id string) error

	AddInternshipFile(ctx context.Context, internshipID string, fileType entity.FileType, up Upload) (*entity.InternshipFile, error)
	InternshipFiles(ctx context.Context, internshipID string) ([]*entity.InternshipFile, error)
	RemoveInternshipFile(ctx context.Context, id string) error

	AddCertification(ctx context.Context, name string, up Upload) (*entity.Certification, error)
	Certifications(ctx context.Context) ([]*entity.Certification, error)
	RemoveCertification(ctx context.Context, id string) error

	AddLink(ctx context.Context, title, url, description string) (*entity.DocumentLink, error)
	Links(ctx context.Context) ([]*entity.DocumentLink, error)
	RemoveLink(ctx context.Context, id string) error
}
