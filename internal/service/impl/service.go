// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/service"
	"github.com/hearthy-foundation/hearth/internal/storage"
)

const (
	pointsPerPost      = 10
	pointsPerEventJoin = 30

	urgentTeaserLimit = 3

	pendingStatus = "pending"
	activeStatus  = "active"
	newStatus     = "new"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type documentRules struct {
	maxSize   int64
	types     map[string]struct{}
	typeError string
	sizeError string
}

// nolint:gochecknoglobals
var (
	// the volunteer flow accepts PDF and images up to 5MB
	volunteerDocumentRules = documentRules{
		maxSize: 5 << 20,
		types: map[string]struct{}{
			"application/pdf": {},
			"image/jpeg":      {},
			"image/jpg":       {},
			"image/png":       {},
		},
		typeError: "Only PDF and JPEG files are accepted",
		sizeError: "File size must be less than 5MB",
	}

	// care facilities and foundations additionally attach DOC/DOCX
	// statutes, up to 10MB
	organizationDocumentRules = documentRules{
		maxSize: 10 << 20,
		types: map[string]struct{}{
			"application/pdf":    {},
			"image/jpeg":         {},
			"image/jpg":          {},
			"image/png":          {},
			"application/msword": {},
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
		},
		typeError: "Only PDF, JPEG, PNG and DOC files are accepted",
		sizeError: "File size must be less than 10MB",
	}
)

type srv struct {
	s storage.Storage

	now   func() time.Time
	newID func() string
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s:     s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s srv) RegisterVolunteer(ctx context.Context, r *service.VolunteerRegistration) (*service.RegistrationResult, error) {
	var violations []string

	if strings.TrimSpace(r.FirstName) == "" {
		violations = append(violations, "First name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		violations = append(violations, "Last name is required")
	}
	violations = append(violations, validateCredentials(r.Email, r.Password, r.ConfirmPassword)...)

	if len(violations) > 0 {
		return nil, &service.ValidationError{Violations: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fullName := fmt.Sprintf("%s %s", strings.TrimSpace(r.FirstName), strings.TrimSpace(r.LastName))

	location := ""
	if r.Phone != "" {
		location = "Poland"
	}

	out := &service.RegistrationResult{
		Documents: checkDocuments(r.Documents, volunteerDocumentRules),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.CreateProfile(ctx, &storage.CreateProfileParams{
			ID:                 s.newID(),
			FullName:           fullName,
			Email:              r.Email,
			PasswordHash:       string(hash),
			Location:           location,
			Bio:                r.Motivation,
			VerificationStatus: entities.NotVerified,
		})
		if err != nil {
			return err
		}

		out.ID = p.ID

		if r.Phone == "" && r.DateOfBirth == "" && r.Profession == "" && r.Experience == "" && r.Motivation == "" {
			return nil
		}

		return tx.CreateVolunteerApplication(ctx, &storage.VolunteerApplicationParams{
			ID:          s.newID(),
			FullName:    fullName,
			Email:       r.Email,
			Phone:       r.Phone,
			DateOfBirth: r.DateOfBirth,
			Profession:  r.Profession,
			Experience:  r.Experience,
			Motivation:  r.Motivation,
			Status:      pendingStatus,
		})
	}); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil, service.ErrEmailTaken
		}

		return nil, fmt.Errorf("failed to register volunteer: %w", err)
	}

	return out, nil
}

func (s srv) RegisterCareFacility(ctx context.Context, r *service.OrganizationRegistration) (*service.RegistrationResult, error) {
	return s.registerOrganization(ctx, r, organizationDocumentRules,
		storage.Storage.CreateCareFacilityApplication, storage.Storage.CreateCareFacilityDocument)
}

func (s srv) RegisterFoundation(ctx context.Context, r *service.OrganizationRegistration) (*service.RegistrationResult, error) {
	return s.registerOrganization(ctx, r, organizationDocumentRules,
		storage.Storage.CreateFoundationApplication, storage.Storage.CreateFoundationDocument)
}

func (s srv) registerOrganization(
	ctx context.Context,
	r *service.OrganizationRegistration,
	rules documentRules,
	createApplication func(storage.Storage, context.Context, *storage.FacilityApplicationParams) (string, error),
	createDocument func(storage.Storage, context.Context, *entities.Document) error,
) (*service.RegistrationResult, error) {
	var violations []string

	if strings.TrimSpace(r.Name) == "" {
		violations = append(violations, "Name is required")
	}
	violations = append(violations, validateCredentials(r.Email, r.Password, r.ConfirmPassword)...)
	if len(r.Documents) == 0 {
		violations = append(violations, "Please upload at least one document")
	}

	if len(violations) > 0 {
		return nil, &service.ValidationError{Violations: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	out := &service.RegistrationResult{
		Documents: checkDocuments(r.Documents, rules),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		id, err := createApplication(tx, ctx, &storage.FacilityApplicationParams{
			ID:                  s.newID(),
			Name:                r.Name,
			DateOfEstablishment: r.DateOfEstablishment,
			BusinessProfile:     r.BusinessProfile,
			Address:             r.Address,
			KRS:                 r.KRS,
			Email:               r.Email,
			PasswordHash:        string(hash),
			Status:              pendingStatus,
		})
		if err != nil {
			return err
		}

		out.ID = id

		for i, d := range r.Documents {
			if !out.Documents[i].Valid {
				continue
			}

			if err := createDocument(tx, ctx, &entities.Document{
				ID:             s.newID(),
				RegistrationID: id,
				DocumentType:   documentType(d.FileName),
				FileName:       d.FileName,
				FileURL:        "", // binary storage is out of scope
				FileSize:       d.FileSize,
			}); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register organization: %w", err)
	}

	return out, nil
}

func (s srv) SubmitContactRequest(ctx context.Context, r *service.ContactRequest) error {
	var violations []string

	if strings.TrimSpace(r.FullName) == "" || strings.TrimSpace(r.Email) == "" {
		violations = append(violations, "Please provide your name and email address")
	} else if !emailRx.MatchString(r.Email) {
		violations = append(violations, "Please provide a valid email address")
	}

	if len(violations) > 0 {
		return &service.ValidationError{Violations: violations}
	}

	if err := s.s.CreateContactRequest(ctx, &storage.ContactRequestParams{
		ID:       s.newID(),
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Message:  r.Message,
		Status:   newStatus,
	}); err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}

	return nil
}

func (s srv) ListFeed(ctx context.Context, p *service.FeedParams) ([]*service.FeedPost, error) {
	params := storage.ListPostsParams{Limit: p.Limit}

	if p.Category != "" && p.Category != "all" {
		c := entities.Category(p.Category)
		params.Category = &c
	}

	if p.Location != "" {
		l := p.Location
		params.Location = &l
	}

	posts, err := s.s.ListPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]string, len(posts))
	for i, v := range posts {
		ids[i] = v.ID
	}

	comments, err := s.s.GetComments(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	var liked map[string]bool
	if p.RequestedBy != "" {
		if liked, err = s.s.GetLikes(ctx, p.RequestedBy, ids...); err != nil {
			return nil, fmt.Errorf("failed to get likes: %w", err)
		}
	}

	out := make([]*service.FeedPost, len(posts))
	for i, v := range posts {
		out[i] = &service.FeedPost{
			Post:         *v,
			Comments:     comments[v.ID],
			UserHasLiked: liked[v.ID],
		}
	}

	return out, nil
}

func (s srv) CreatePost(ctx context.Context, author *entities.Profile, content string, category entities.Category, location string) (*service.FeedPost, error) {
	if author.VerificationStatus.ReadOnly() {
		return nil, service.ErrReadOnly
	}

	var violations []string
	if strings.TrimSpace(content) == "" {
		violations = append(violations, "Content is required")
	}
	if !category.Valid() {
		violations = append(violations, "Invalid category")
	}
	if len(violations) > 0 {
		return nil, &service.ValidationError{Violations: violations}
	}

	var post *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		var err error
		post, err = tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:         s.newID(),
			AuthorID:   author.ID,
			AuthorName: author.FullName,
			Content:    content,
			Category:   category,
			Location:   location,
			CreatedAt:  s.now(),
		})
		if err != nil {
			return err
		}

		return s.awardPoints(ctx, tx, author.ID, "post_created", "Shared a post with the community", pointsPerPost)
	}); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &service.FeedPost{Post: *post, Comments: []*entities.Comment{}}, nil
}

func (s srv) ToggleLike(ctx context.Context, user *entities.Profile, postID string) (*service.LikeResult, error) {
	if user.VerificationStatus.ReadOnly() {
		return nil, service.ErrReadOnly
	}

	out := service.LikeResult{PostID: postID}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		liked, err := tx.GetLikes(ctx, user.ID, postID)
		if err != nil {
			return err
		}

		if liked[postID] {
			deleted, err := tx.DeleteLike(ctx, postID, user.ID)
			if err != nil {
				return err
			}

			delta := 0
			if deleted {
				delta = -1
			}

			if out.LikesCount, err = tx.AddPostLikes(ctx, postID, delta); err != nil {
				return err
			}

			out.UserHasLiked = false

			return nil
		}

		inserted, err := tx.CreateLike(ctx, postID, user.ID)
		if err != nil {
			return err
		}

		delta := 0
		if inserted {
			delta = 1
		}

		if out.LikesCount, err = tx.AddPostLikes(ctx, postID, delta); err != nil {
			return err
		}

		out.UserHasLiked = true

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return &out, nil
}

func (s srv) AddComment(ctx context.Context, user *entities.Profile, postID, content string) (*service.CommentResult, error) {
	if user.VerificationStatus.ReadOnly() {
		return nil, service.ErrReadOnly
	}

	if strings.TrimSpace(content) == "" {
		return nil, &service.ValidationError{Violations: []string{"Content is required"}}
	}

	var out service.CommentResult

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		c, err := tx.CreateComment(ctx, &storage.CreateCommentParams{
			ID:        s.newID(),
			PostID:    postID,
			UserID:    user.ID,
			UserName:  user.FullName,
			Content:   content,
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}

		out.Comment = c
		out.CommentsCount, err = tx.AddPostComments(ctx, postID, 1)

		return err
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &out, nil
}

func (s srv) ListEvents(ctx context.Context, p *service.EventsParams) ([]*entities.Event, error) {
	params := storage.ListEventsParams{
		After:  s.now(),
		SortBy: p.SortBy,
		Limit:  p.Limit,
	}

	// the proximity order is only known after ranking, limiting the fetch
	// first would cut nearby events from the page
	if p.SortBy == storage.EventLocationSortType {
		params.Limit = 0
	}

	events, err := s.s.ListUpcomingEvents(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	if p.SortBy == storage.EventLocationSortType {
		sort.SliceStable(events, func(i, j int) bool {
			return locationDistance(events[i].Location, p.UserLocation) < locationDistance(events[j].Location, p.UserLocation)
		})

		if p.Limit > 0 && len(events) > int(p.Limit) {
			events = events[:p.Limit]
		}
	}

	return events, nil
}

func (s srv) JoinEvent(ctx context.Context, user *entities.Profile, eventID string) (*entities.Event, error) {
	if user.VerificationStatus.ReadOnly() {
		return nil, service.ErrReadOnly
	}

	var out *entities.Event

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		joined, err := tx.CreateAttendance(ctx, eventID, user.ID)
		if err != nil {
			return err
		}

		if joined {
			if _, err := tx.AddEventAttendees(ctx, eventID, 1); err != nil {
				return err
			}

			if err := s.awardPoints(ctx, tx, user.ID, "event_joined", "Registered for an event", pointsPerEventJoin); err != nil {
				return err
			}
		}

		out, err = tx.GetEvent(ctx, eventID)

		return err
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to join event: %w", err)
	}

	return out, nil
}

func (s srv) Ranking(ctx context.Context, currentUserID string) (*service.Ranking, error) {
	profiles, err := s.s.ListProfilesByPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	out := service.Ranking{Top: profiles}
	if len(profiles) > 10 {
		out.Top = profiles[:10]
	}

	if currentUserID != "" {
		for i, v := range profiles {
			if v.ID == currentUserID {
				out.UserRank = i + 1
				break
			}
		}
	}

	return &out, nil
}

func (s srv) UrgentNeeds(ctx context.Context) (*service.UrgentNeeds, error) {
	total, err := s.s.CountOpportunities(ctx, entities.UrgentUrgency, activeStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}

	urgency, status := entities.UrgentUrgency, activeStatus
	items, err := s.s.ListOpportunities(ctx, &storage.ListOpportunitiesParams{
		Urgency: &urgency,
		Status:  &status,
		Limit:   urgentTeaserLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	out := service.UrgentNeeds{
		Items: items,
		Total: total,
	}

	if shown := uint32(len(items)); total > shown {
		out.Remaining = total - shown
	}

	return &out, nil
}

func (s srv) OpportunityBoard(ctx context.Context) (*service.OpportunityBoard, error) {
	var out service.OpportunityBoard

	for _, v := range []struct {
		urgency entities.Urgency
		dst     *[]*entities.Opportunity
	}{
		{entities.ImmediateUrgency, &out.Immediate},
		{entities.OngoingUrgency, &out.Ongoing},
	} {
		urgency, status := v.urgency, activeStatus

		items, err := s.s.ListOpportunities(ctx, &storage.ListOpportunitiesParams{
			Urgency: &urgency,
			Status:  &status,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s opportunities: %w", v.urgency, err)
		}

		*v.dst = items
	}

	return &out, nil
}

func (s srv) ContentSections(ctx context.Context, view string) ([]*entities.ContentSection, error) {
	out, err := s.s.ListContentSections(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("failed to list content sections: %w", err)
	}

	return out, nil
}

func (s srv) Activities(ctx context.Context, userID string) ([]*entities.Activity, error) {
	out, err := s.s.ListActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return out, nil
}

func (s srv) AssignedOpportunities(ctx context.Context, userID string) ([]*entities.AssignedOpportunity, error) {
	out, err := s.s.ListAssignedOpportunities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned opportunities: %w", err)
	}

	return out, nil
}

func (s srv) awardPoints(ctx context.Context, tx storage.Storage, userID, activityType, description string, points int) error {
	if err := tx.CreateActivity(ctx, &storage.CreateActivityParams{
		ID:          s.newID(),
		UserID:      userID,
		Type:        activityType,
		Description: description,
		Points:      points,
	}); err != nil {
		return err
	}

	return tx.AddProfilePoints(ctx, userID, points)
}

func validateCredentials(email, password, confirm string) []string {
	var out []string

	if strings.TrimSpace(email) == "" {
		out = append(out, "Email is required")
	} else if !emailRx.MatchString(email) {
		out = append(out, "Invalid email format")
	}

	if strings.TrimSpace(password) == "" {
		out = append(out, "Password is required")
	}
	if len(password) < 8 {
		out = append(out, "Password must be at least 8 characters long")
	}
	if password != confirm {
		out = append(out, "Passwords do not match")
	}

	return out
}

func checkDocuments(dd []service.DocumentUpload, rules documentRules) []service.DocumentStatus {
	out := make([]service.DocumentStatus, len(dd))

	for i, d := range dd {
		out[i] = service.DocumentStatus{FileName: d.FileName, Valid: true}

		if _, ok := rules.types[strings.ToLower(d.ContentType)]; !ok {
			out[i].Valid = false
			out[i].Error = rules.typeError
			continue
		}

		if d.FileSize > rules.maxSize {
			out[i].Valid = false
			out[i].Error = rules.sizeError
		}
	}

	return out
}

// locationDistance is the coarse proximity heuristic carried over from the
// dashboard: exact match, substring containment, shared city prefix before
// the first comma, everything else. It knows nothing about geography.
func locationDistance(location1, location2 string) int {
	loc1 := strings.ToLower(location1)
	loc2 := strings.ToLower(location2)

	if loc1 == loc2 {
		return 0
	}

	if strings.Contains(loc1, loc2) || strings.Contains(loc2, loc1) {
		return 1
	}

	city1 := strings.TrimSpace(strings.SplitN(loc1, ",", 2)[0])
	city2 := strings.TrimSpace(strings.SplitN(loc2, ",", 2)[0])
	if city1 == city2 {
		return 2
	}

	return 3
}

func documentType(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		return strings.ToLower(fileName[i+1:])
	}

	return "document"
}
