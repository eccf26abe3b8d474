package entity

import "time"

// Dated is the shared metadata of every day-scoped record. Date is the
// local calendar day in yyyy-MM-dd form, assigned at creation and never
// mutated afterwards (re-dating is delete+recreate).
type Dated struct {
	ID   string `json:"id"`
	Date string `json:"date" validate:"required,day"`
}

func (d *Dated) GetID() string   { return d.ID }
func (d *Dated) SetID(id string) { d.ID = id }
func (d *Dated) Day() string     { return d.Date }

// Done is embedded by records that can be checked off.
type Done struct {
	Completed bool `json:"completed"`
}

func (d *Done) Toggle() { d.Completed = !d.Completed }

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

type Goal struct {
	Dated
	Done
	Title string `json:"title" validate:"required"`
}

type Task struct {
	Dated
	Done
	Title string `json:"title" validate:"required"`
}

type NegativeThought struct {
	Dated
	Thought string `json:"thought" validate:"required"`
}

type PositiveThought struct {
	Dated
	Thought string `json:"thought" validate:"required"`
}

type EnergyLog struct {
	Dated
	Activity string `json:"activity" validate:"required"`
	Impact   Impact `json:"impact" validate:"required,oneof=positive neutral negative"`
}

type WellnessLog struct {
	Dated
	Activity string `json:"activity" validate:"required"`
}

type Communication struct {
	Dated
	Done
	Task string `json:"task" validate:"required"`
}

type Entertainment struct {
	Dated
	Done
	Activity string `json:"activity" validate:"required"`
}

type Technology struct {
	Dated
	Title string `json:"title" validate:"required"`
}

type Topic struct {
	Dated
	Topic string `json:"topic" validate:"required"`
}

// Streak counts occurrences of a kind per day. At most one record exists
// per (kind, date); incrementing finds-or-creates by date.
type Streak struct {
	Dated
	Kind  string `json:"kind" validate:"required"`
	Count int    `json:"count" validate:"min=0"`
}

// Stamped is the shared metadata of document-vault records.
type Stamped struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Stamped) GetID() string   { return s.ID }
func (s *Stamped) SetID(id string) { s.ID = id }

// BlobRef points at the bytes of an uploaded file. The inline strategy
// fills Data with base64 text; the external strategy fills URL and Key.
type BlobRef struct {
	Data string `json:"fileData,omitempty"`
	URL  string `json:"fileUrl,omitempty"`
	Key  string `json:"storageKey,omitempty"`
}

type CollegeDocument struct {
	Stamped
	Category string `json:"category" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	BlobRef
}

type Internship struct {
	Stamped
	InternshipName string `json:"internshipName" validate:"required"`
}

type FileType string

const (
	FileTypeOfferLetter           FileType = "offer_letter"
	FileTypeCompletionCertificate FileType = "completion_certificate"
	FileTypeOther                 FileType = "other"
)

type InternshipFile struct {
	Stamped
	InternshipID string   `json:"internshipId" validate:"required"`
	FileType     FileType `json:"fileType" validate:"required,oneof=offer_letter completion_certificate other"`
	FileName     string   `json:"fileName" validate:"required"`
	MimeType     string   `json:"mimeType" validate:"required"`
	BlobRef
}

type Certification struct {
	Stamped
	Name     string `json:"name" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	BlobRef
}

// DocumentLink carries no blob. Description always round-trips as an
// explicit string, empty when the caller omitted it.
type DocumentLink struct {
	Stamped
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}
