// Package entities contains main entities of service.
package entities

import (
	"time"
)

// VerificationStatus is a three-level trust classification on a profile.
type VerificationStatus string

const (
	// NotVerified ...
	NotVerified VerificationStatus = "not_verified"
	// VerifiedLevel1 ...
	VerifiedLevel1 VerificationStatus = "verified_level_1"
	// VerifiedLevel2 ...
	VerifiedLevel2 VerificationStatus = "verified_level_2"
)

// ReadOnly reports whether the status disables mutating actions.
func (s VerificationStatus) ReadOnly() bool {
	return s == NotVerified || s == ""
}

// Category is a closed set of post and opportunity categories.
type Category string

const (
	// EducationMathCategory ...
	EducationMathCategory Category = "education_math"
	// EducationEnglishCategory ...
	EducationEnglishCategory Category = "education_english"
	// EducationPolishCategory ...
	EducationPolishCategory Category = "education_polish"
	// HealthCategory ...
	HealthCategory Category = "health"
	// EventsCategory ...
	EventsCategory Category = "events"
	// CommunityServiceCategory ...
	CommunityServiceCategory Category = "community_service"
)

// Valid ...
func (c Category) Valid() bool {
	switch c {
	case EducationMathCategory, EducationEnglishCategory, EducationPolishCategory,
		HealthCategory, EventsCategory, CommunityServiceCategory:
		return true
	}
	return false
}

// Urgency is a closed-set classification used to prioritize needs.
type Urgency string

const (
	// ImmediateUrgency ...
	ImmediateUrgency Urgency = "immediate"
	// OngoingUrgency ...
	OngoingUrgency Urgency = "ongoing"
	// UrgentUrgency ...
	UrgentUrgency Urgency = "urgent"
)

// Profile ...
type Profile struct {
	ID                 string
	FullName           string
	Email              string
	Location           string
	Bio                string
	Skills             []string
	Interests          []string
	Points             int
	AvatarURL          string
	VerificationStatus VerificationStatus
	CreatedAt          time.Time
}

// Session is a server-side session record.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Post ...
type Post struct {
	ID            string
	AuthorID      string
	AuthorName    string
	Content       string
	Category      Category
	Location      string
	LikesCount    uint32
	CommentsCount uint32
	CreatedAt     time.Time
}

// Comment ...
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	UserName  string
	Content   string
	CreatedAt time.Time
}

// Event ...
type Event struct {
	ID             string
	Title          string
	Description    string
	Category       string
	Location       string
	EventDate      time.Time
	Organizer      string
	AttendeesCount uint32
}

// Opportunity ...
type Opportunity struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Institution string
	Location    string
	Urgency     Urgency
	Status      string
	CreatedAt   time.Time
}

// Activity is an append-only log entry attributing points to a user.
type Activity struct {
	ID          string
	UserID      string
	Type        string
	Description string
	Points      int
	CreatedAt   time.Time
}

// AssignedOpportunity is a project assignment, read-only for this service.
type AssignedOpportunity struct {
	ID          string
	UserID      string
	Title       string
	Institution string
	Status      string
	CreatedAt   time.Time
}

// ContentSection is a row of semi-static marketing copy for a named view.
type ContentSection struct {
	ID       string
	View     string
	Section  string
	Title    string
	Body     string
	ImageURL string
	Position int
}

// Document is uploaded-document metadata. Binary content is out of scope,
// file_url is persisted as an empty placeholder.
type Document struct {
	ID             string
	RegistrationID string
	DocumentType   string
	FileName       string
	FileURL        string
	FileSize       int64
}
