// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/hearthy-foundation/hearth/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrEmailTaken is returned when a profile with the same email already exists.
var ErrEmailTaken = fmt.Errorf("email already registered")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateProfile(ctx context.Context, p *CreateProfileParams) (*entities.Profile, error)
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*entities.Profile, error)
	// ListProfilesByPoints returns all profiles ordered by
	// points desc, created_at asc, id asc.
	ListProfilesByPoints(ctx context.Context) ([]*entities.Profile, error)
	AddProfilePoints(ctx context.Context, userID string, delta int) error

	CreateSession(ctx context.Context, s *entities.Session) error
	GetSession(ctx context.Context, token string) (*entities.Session, error)
	DeleteSession(ctx context.Context, token string) error

	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	GetComments(ctx context.Context, postID ...string) (map[string][]*entities.Comment, error)
	CreateComment(ctx context.Context, p *CreateCommentParams) (*entities.Comment, error)
	GetLikes(ctx context.Context, likedBy string, postID ...string) (map[string]bool, error)
	// CreateLike reports whether a new row was inserted, false means the
	// (post, user) pair already existed.
	CreateLike(ctx context.Context, postID, userID string) (bool, error)
	DeleteLike(ctx context.Context, postID, userID string) (bool, error)
	// AddPostLikes atomically adjusts the denormalized counter with a floor
	// of zero and returns the new value.
	AddPostLikes(ctx context.Context, postID string, delta int) (uint32, error)
	AddPostComments(ctx context.Context, postID string, delta int) (uint32, error)

	ListUpcomingEvents(ctx context.Context, p *ListEventsParams) ([]*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	CreateAttendance(ctx context.Context, eventID, userID string) (bool, error)
	AddEventAttendees(ctx context.Context, eventID string, delta int) (uint32, error)

	ListOpportunities(ctx context.Context, p *ListOpportunitiesParams) ([]*entities.Opportunity, error)
	CountOpportunities(ctx context.Context, urgency entities.Urgency, status string) (uint32, error)

	CreateVolunteerApplication(ctx context.Context, p *VolunteerApplicationParams) error
	CreateCareFacilityApplication(ctx context.Context, p *FacilityApplicationParams) (string, error)
	CreateCareFacilityDocument(ctx context.Context, d *entities.Document) error
	CreateFoundationApplication(ctx context.Context, p *FacilityApplicationParams) (string, error)
	CreateFoundationDocument(ctx context.Context, d *entities.Document) error
	CreateContactRequest(ctx context.Context, p *ContactRequestParams) error

	CreateActivity(ctx context.Context, p *CreateActivityParams) error
	ListActivities(ctx context.Context, userID string) ([]*entities.Activity, error)
	ListAssignedOpportunities(ctx context.Context, userID string) ([]*entities.AssignedOpportunity, error)

	ListContentSections(ctx context.Context, view string) ([]*entities.ContentSection, error)
}

// EventSortType ...
type EventSortType string

const (
	// EventDateSortType ...
	EventDateSortType EventSortType = "date"
	// EventCategorySortType ...
	EventCategorySortType EventSortType = "category"
	// EventLocationSortType fetches in stable insertion order, re-ranking
	// happens on the service side.
	EventLocationSortType EventSortType = "location"
)

// CreateProfileParams ...
type CreateProfileParams struct {
	ID                 string
	FullName           string
	Email              string
	PasswordHash       string
	Location           string
	Bio                string
	Skills             []string
	Interests          []string
	VerificationStatus entities.VerificationStatus
}

// ListPostsParams ...
type ListPostsParams struct {
	Category *entities.Category
	Location *string
	Limit    uint16
}

// CreatePostParams ...
type CreatePostParams struct {
	ID         string
	AuthorID   string
	AuthorName string
	Content    string
	Category   entities.Category
	Location   string
	CreatedAt  time.Time
}

// CreateCommentParams ...
type CreateCommentParams struct {
	ID        string
	PostID    string
	UserID    string
	UserName  string
	Content   string
	CreatedAt time.Time
}

// ListEventsParams ...
type ListEventsParams struct {
	After  time.Time
	SortBy EventSortType
	Limit  uint16
}

// ListOpportunitiesParams ...
type ListOpportunitiesParams struct {
	Urgency *entities.Urgency
	Status  *string
	Limit   uint16
}

// VolunteerApplicationParams ...
type VolunteerApplicationParams struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	DateOfBirth string
	Profession  string
	Experience  string
	Motivation  string
	Status      string
}

// FacilityApplicationParams holds fields shared by the care-facility and
// foundation application rows.
type FacilityApplicationParams struct {
	ID                  string
	Name                string
	DateOfEstablishment string
	BusinessProfile     string
	Address             string
	KRS                 string
	Email               string
	PasswordHash        string
	Status              string
}

// ContactRequestParams ...
type ContactRequestParams struct {
	ID       string
	FullName string
	Email    string
	Phone    string
	Message  string
	Status   string
}

// CreateActivityParams ...
type CreateActivityParams struct {
	ID          string
	UserID      string
	Type        string
	Description string
	Points      int
}
