// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when the registration email is already in use.
var ErrEmailTaken = errors.New("email already registered")

// ErrReadOnly is returned when an unverified user attempts a mutation.
var ErrReadOnly = errors.New("account is read-only until verified")

// ValidationError carries the list of violated rules. It is produced
// before any write happens.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// DocumentUpload is uploaded-document metadata submitted with a
// registration. Binary content is out of scope.
type DocumentUpload struct {
	FileName    string
	ContentType string
	FileSize    int64
}

// DocumentStatus is the per-item validation verdict. Invalid items are
// flagged, not rejected; only the absence of documents blocks a flow which
// requires them.
type DocumentStatus struct {
	FileName string
	Valid    bool
	Error    string
}

// VolunteerRegistration ...
type VolunteerRegistration struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	DateOfBirth     string
	Profession      string
	Experience      string
	Motivation      string
	Password        string
	ConfirmPassword string
	Documents       []DocumentUpload
}

// OrganizationRegistration is shared by the care-facility and foundation
// flows, which submit the same form shape.
type OrganizationRegistration struct {
	Name                string
	DateOfEstablishment string
	BusinessProfile     string
	Address             string
	KRS                 string
	Email               string
	Password            string
	ConfirmPassword     string
	Documents           []DocumentUpload
}

// RegistrationResult ...
type RegistrationResult struct {
	ID        string
	Documents []DocumentStatus
}

// ContactRequest ...
type ContactRequest struct {
	FullName string
	Email    string
	Phone    string
	Message  string
}

// FeedParams filters the post stream. Category "all" or empty bypasses the
// category filter; Location is a case-insensitive substring match.
type FeedParams struct {
	Category    string
	Location    string
	RequestedBy string
	Limit       uint16
}

// FeedPost is a post with its comments and the requester's like flag.
type FeedPost struct {
	entities.Post
	Comments     []*entities.Comment
	UserHasLiked bool
}

// LikeResult ...
type LikeResult struct {
	PostID       string
	LikesCount   uint32
	UserHasLiked bool
}

// CommentResult ...
type CommentResult struct {
	Comment       *entities.Comment
	CommentsCount uint32
}

// EventsParams ...
type EventsParams struct {
	SortBy       storage.EventSortType
	UserLocation string
	Limit        uint16
}

// Ranking holds the top volunteers and the requester's 1-based rank over
// the full points ordering; UserRank is 0 when the requester is unranked.
type Ranking struct {
	Top      []*entities.Profile
	UserRank int
}

// UrgentNeeds is the urgent-needs teaser: the newest items plus the count
// of urgent needs not shown.
type UrgentNeeds struct {
	Items     []*entities.Opportunity
	Total     uint32
	Remaining uint32
}

// OpportunityBoard ...
type OpportunityBoard struct {
	Immediate []*entities.Opportunity
	Ongoing   []*entities.Opportunity
}

// Service ...
type Service interface {
	RegisterVolunteer(ctx context.Context, r *VolunteerRegistration) (*RegistrationResult, error)
	RegisterCareFacility(ctx context.Context, r *OrganizationRegistration) (*RegistrationResult, error)
	RegisterFoundation(ctx context.Context, r *OrganizationRegistration) (*RegistrationResult, error)
	SubmitContactRequest(ctx context.Context, r *ContactRequest) error

	ListFeed(ctx context.Context, p *FeedParams) ([]*FeedPost, error)
	CreatePost(ctx context.Context, author *entities.Profile, content string, category entities.Category, location string) (*FeedPost, error)
	ToggleLike(ctx context.Context, user *entities.Profile, postID string) (*LikeResult, error)
	AddComment(ctx context.Context, user *entities.Profile, postID, content string) (*CommentResult, error)

	ListEvents(ctx context.Context, p *EventsParams) ([]*entities.Event, error)
	JoinEvent(ctx context.Context, user *entities.Profile, eventID string) (*entities.Event, error)
	Ranking(ctx context.Context, currentUserID string) (*Ranking, error)

	UrgentNeeds(ctx context.Context) (*UrgentNeeds, error)
	OpportunityBoard(ctx context.Context) (*OpportunityBoard, error)
	ContentSections(ctx context.Context, view string) ([]*entities.ContentSection, error)

	Activities(ctx context.Context, userID string) ([]*entities.Activity, error)
	AssignedOpportunities(ctx context.Context, userID string) ([]*entities.AssignedOpportunity, error)
}
