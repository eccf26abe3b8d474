package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/rpillai/daytrack/internal/blob"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/internal/repository"
	"github.com/rpillai/daytrack/pkg/entity"
)

// Upload is the raw file a caller hands to the document catalog.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

// DocumentStores bundles the five record families the catalog composes.
type DocumentStores struct {
	College         repository.Store[*entity.CollegeDocument]
	Internships     repository.Store[*entity.Internship]
	InternshipFiles repository.Store[*entity.InternshipFile]
	Certifications  repository.Store[*entity.Certification]
	Links           repository.Store[*entity.DocumentLink]
}

// Documents coordinates blob storage and record persistence. A record is
// created only after its blob store succeeded; a blob is destroyed only
// when its owning record is about to go.
type Documents struct {
	stores DocumentStores
	blobs  blob.Backend
}

func NewDocuments(stores DocumentStores, blobs blob.Backend) *Documents {
	if stores.College == nil || stores.Internships == nil || stores.InternshipFiles == nil ||
		stores.Certifications == nil || stores.Links == nil || blobs == nil {
		log.Fatal("on documents service provided nil stores or blob backend")
	}
	return &Documents{
		stores: stores,
		blobs:  blobs,
	}
}

func (ds *Documents) AddCollegeDocument(ctx context.Context, category string, up Upload) (*entity.CollegeDocument, error) {
	doc := &entity.CollegeDocument{
		Category: category,
		FileName: up.FileName,
		MimeType: up.MimeType,
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	ref, err := ds.blobs.Store(ctx, up.Data, up.MimeType, "college-documents")
	if err != nil {
		return nil, err
	}
	doc.BlobRef = ref
	doc.CreatedAt = time.Now()
	created, err := ds.stores.College.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (ds *Documents) CollegeDocuments(ctx context.Context) ([]*entity.CollegeDocument, error) {
	docs, err := ds.stores.College.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return docs, nil
}

func (ds *Documents) CollegeDocumentsByCategory(ctx context.Context, category string) ([]*entity.CollegeDocument, error) {
	docs, err := ds.stores.College.ListBy(ctx, func(doc *entity.CollegeDocument) bool {
		return doc.Category == category
	})
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return docs, nil
}

func (ds *Documents) CollegeDocument(ctx context.Context, id string) (*entity.CollegeDocument, error) {
	doc, err := ds.stores.College.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return doc, nil
}

func (ds *Documents) RemoveCollegeDocument(ctx context.Context, id string) error {
	doc, err := ds.stores.College.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	ds.destroyBlob(ctx, doc.BlobRef, "college document", id)
	err = ds.stores.College.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

func (ds *Documents) AddInternship(ctx context.Context, name string) (*entity.Internship, error) {
	internship := &entity.Internship{
		InternshipName: name,
	}
	if err := validate.Struct(internship); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	internship.CreatedAt = time.Now()
	created, err := ds.stores.Internships.Create(ctx, internship)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (ds *Documents) Internships(ctx context.Context) ([]*entity.Internship, error) {
	internships, err := ds.stores.Internships.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return internships, nil
}

func (ds *Documents) Internship(ctx context.Context, id string) (*entity.Internship, error) {
	internship, err := ds.stores.Internships.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return internship, nil
}

// RemoveInternship cascades over the container's files: every child blob
// is destroyed and every child record deleted before the container record
// goes. A child record delete failure aborts the cascade so the remaining
// file records stay reachable for a retry.
func (ds *Documents) RemoveInternship(ctx context.Context, id string) error {
	files, err := ds.stores.InternshipFiles.ListBy(ctx, func(f *entity.InternshipFile) bool {
		return f.InternshipID == id
	})
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	for _, file := range files {
		ds.destroyBlob(ctx, file.BlobRef, "internship file", file.ID)
		if err = ds.stores.InternshipFiles.Delete(ctx, file.ID); err != nil {
			return fmt.Errorf("deleting internship file %s error: %s", file.ID, err.Error())
		}
	}
	err = ds.stores.Internships.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

func (ds *Documents) AddInternshipFile(ctx context.Context, internshipID string, fileType entity.FileType, up Upload) (*entity.InternshipFile, error) {
	if _, err := ds.stores.Internships.Get(ctx, internshipID); err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	file := &entity.InternshipFile{
		InternshipID: internshipID,
		FileType:     fileType,
		FileName:     up.FileName,
		MimeType:     up.MimeType,
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	ref, err := ds.blobs.Store(ctx, up.Data, up.MimeType, "internship-files")
	if err != nil {
		return nil, err
	}
	file.BlobRef = ref
	file.CreatedAt = time.Now()
	created, err := ds.stores.InternshipFiles.Create(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (ds *Documents) InternshipFiles(ctx context.Context, internshipID string) ([]*entity.InternshipFile, error) {
	files, err := ds.stores.InternshipFiles.ListBy(ctx, func(f *entity.InternshipFile) bool {
		return f.InternshipID == internshipID
	})
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return files, nil
}

func (ds *Documents) RemoveInternshipFile(ctx context.Context, id string) error {
	file, err := ds.stores.InternshipFiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	ds.destroyBlob(ctx, file.BlobRef, "internship file", id)
	err = ds.stores.InternshipFiles.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

func (ds *Documents) AddCertification(ctx context.Context, name string, up Upload) (*entity.Certification, error) {
	cert := &entity.Certification{
		Name:     name,
		FileName: up.FileName,
		MimeType: up.MimeType,
	}
	if err := validate.Struct(cert); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	ref, err := ds.blobs.Store(ctx, up.Data, up.MimeType, "certifications")
	if err != nil {
		return nil, err
	}
	cert.BlobRef = ref
	cert.CreatedAt = time.Now()
	created, err := ds.stores.Certifications.Create(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (ds *Documents) Certifications(ctx context.Context) ([]*entity.Certification, error) {
	certs, err := ds.stores.Certifications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return certs, nil
}

func (ds *Documents) RemoveCertification(ctx context.Context, id string) error {
	cert, err := ds.stores.Certifications.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	ds.destroyBlob(ctx, cert.BlobRef, "certification", id)
	err = ds.stores.Certifications.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

func (ds *Documents) AddLink(ctx context.Context, title, url, description string) (*entity.DocumentLink, error) {
	link := &entity.DocumentLink{
		Title:       title,
		URL:         url,
		Description: description,
	}
	if err := validate.Struct(link); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidRecord, err.Error())
	}
	link.CreatedAt = time.Now()
	created, err := ds.stores.Links.Create(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return created, nil
}

func (ds *Documents) Links(ctx context.Context) ([]*entity.DocumentLink, error) {
	links, err := ds.stores.Links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("records repository error: %s", err.Error())
	}
	return links, nil
}

func (ds *Documents) RemoveLink(ctx context.Context, id string) error {
	err := ds.stores.Links.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("records repository error: %s", err.Error())
	}
	return nil
}

// destroyBlob is best-effort: a failed remote destroy is logged and never
// blocks the record delete. The tradeoff is a possible leaked remote
// object, accepted since no reconciliation job exists.
func (ds *Documents) destroyBlob(ctx context.Context, ref entity.BlobRef, kind, id string) {
	if err := ds.blobs.Destroy(ctx, ref); err != nil {
		slog.Error("blob cleanup failed",
			slog.String("kind", kind),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
}
