package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// nolint:gochecknoglobals
var validViews = map[string]struct{}{
	"home":                         {},
	"opportunities":                {},
	"registration":                 {},
	"contact":                      {},
	"dashboard":                    {},
	"profile":                      {},
	"success":                      {},
	"events":                       {},
	"care-facility-registration":   {},
	"foundation-registration":      {},
}

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// ValidationErrors ...
// swagger:model
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// SignInRequest ...
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse ...
// swagger:model
type SignInResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Profile ...
type Profile struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	Location           string   `json:"location"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Interests          []string `json:"interests"`
	Points             int      `json:"points"`
	AvatarURL          string   `json:"avatar_url"`
	VerificationStatus string   `json:"verification_status"`
	CreatedAt          uint64   `json:"created_at"`
}

// Post ...
type Post struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	LikesCount    uint32    `json:"likes_count"`
	CommentsCount uint32    `json:"comments_count"`
	CreatedAt     uint64    `json:"created_at"`
	Comments      []Comment `json:"comments"`
	UserHasLiked  bool      `json:"user_has_liked"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	CreatedAt uint64 `json:"created_at"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// AddCommentRequest ...
type AddCommentRequest struct {
	Content string `json:"content"`
}

// LikeResponse ...
// swagger:model
type LikeResponse struct {
	PostID       string `json:"post_id"`
	LikesCount   uint32 `json:"likes_count"`
	UserHasLiked bool   `json:"user_has_liked"`
}

// CommentResponse ...
// swagger:model
type CommentResponse struct {
	Comment       Comment `json:"comment"`
	CommentsCount uint32  `json:"comments_count"`
}

// Event ...
type Event struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	EventDate      uint64 `json:"event_date"`
	Organizer      string `json:"organizer"`
	AttendeesCount uint32 `json:"attendees_count"`
}

// Opportunity ...
type Opportunity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Urgency     string `json:"urgency"`
	CreatedAt   uint64 `json:"created_at"`
}

// RankedProfile ...
type RankedProfile struct {
	Rank      int    `json:"rank"`
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Points    int    `json:"points"`
	AvatarURL string `json:"avatar_url"`
}

// RankingResponse ...
// swagger:model
type RankingResponse struct {
	Top      []RankedProfile `json:"top"`
	UserRank int             `json:"user_rank,omitempty"`
}

// UrgentNeedsResponse ...
// swagger:model
type UrgentNeedsResponse struct {
	Items     []Opportunity `json:"items"`
	Total     uint32        `json:"total"`
	Remaining uint32        `json:"remaining"`
}

// OpportunityBoardResponse ...
// swagger:model
type OpportunityBoardResponse struct {
	Immediate []Opportunity `json:"immediate"`
	Ongoing   []Opportunity `json:"ongoing"`
}

// Activity ...
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	CreatedAt   uint64 `json:"created_at"`
}

// AssignedOpportunity ...
type AssignedOpportunity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	CreatedAt   uint64 `json:"created_at"`
}

// ContentSection ...
type ContentSection struct {
	ID       string `json:"id"`
	Section  string `json:"section"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

// DocumentUpload ...
type DocumentUpload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
}

// DocumentStatus ...
type DocumentStatus struct {
	FileName string `json:"file_name"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// VolunteerRegistrationRequest ...
type VolunteerRegistrationRequest struct {
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	DateOfBirth     string           `json:"date_of_birth"`
	Profession      string           `json:"profession"`
	Experience      string           `json:"experience"`
	Motivation      string           `json:"motivation"`
	Password        string           `json:"password"`
	ConfirmPassword string           `json:"confirm_password"`
	Documents       []DocumentUpload `json:"documents"`
}

// OrganizationRegistrationRequest is shared by care facilities and foundations.
type OrganizationRegistrationRequest struct {
	Name                string           `json:"name"`
	DateOfEstablishment string           `json:"date_of_establishment"`
	BusinessProfile     string           `json:"business_profile"`
	Address             string           `json:"address"`
	KRS                 string           `json:"krs"`
	Email               string           `json:"email"`
	Password            string           `json:"password"`
	ConfirmPassword     string           `json:"confirm_password"`
	Documents           []DocumentUpload `json:"documents"`
}

// RegistrationResponse ...
// swagger:model
type RegistrationResponse struct {
	ID        string           `json:"id"`
	View      string           `json:"view"`
	Documents []DocumentStatus `json:"documents"`
}

// ContactRequest ...
type ContactRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeErrorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	writeError(w, status, fmt.Sprintf(format, args...))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", requestID(ctx)).Error(message)

	writeError(w, http.StatusInternalServerError, "internal error")
}

func toProfile(p *entities.Profile) Profile {
	out := Profile{
		ID:                 p.ID,
		FullName:           p.FullName,
		Email:              p.Email,
		Location:           p.Location,
		Bio:                p.Bio,
		Skills:             p.Skills,
		Interests:          p.Interests,
		Points:             p.Points,
		AvatarURL:          p.AvatarURL,
		VerificationStatus: string(p.VerificationStatus),
		CreatedAt:          uint64(p.CreatedAt.Unix()),
	}

	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Interests == nil {
		out.Interests = []string{}
	}

	return out
}

func toComment(c *entities.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: uint64(c.CreatedAt.Unix()),
	}
}

func toPost(p *service.FeedPost) Post {
	out := Post{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		Content:       p.Content,
		Category:      string(p.Category),
		Location:      p.Location,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
		Comments:      make([]Comment, 0, len(p.Comments)),
		UserHasLiked:  p.UserHasLiked,
	}

	for _, c := range p.Comments {
		out.Comments = append(out.Comments, toComment(c))
	}

	return out
}

func toEvent(e *entities.Event) Event {
	return Event{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Category:       e.Category,
		Location:       e.Location,
		EventDate:      uint64(e.EventDate.Unix()),
		Organizer:      e.Organizer,
		AttendeesCount: e.AttendeesCount,
	}
}

func toOpportunities(oo []*entities.Opportunity) []Opportunity {
	out := make([]Opportunity, 0, len(oo))

	for _, o := range oo {
		out = append(out, Opportunity{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
			Category:    string(o.Category),
			Institution: o.Institution,
			Location:    o.Location,
			Urgency:     string(o.Urgency),
			CreatedAt:   uint64(o.CreatedAt.Unix()),
		})
	}

	return out
}

func toRegistrationResponse(r *service.RegistrationResult) RegistrationResponse {
	out := RegistrationResponse{
		ID:        r.ID,
		View:      "success",
		Documents: make([]DocumentStatus, 0, len(r.Documents)),
	}

	for _, d := range r.Documents {
		out.Documents = append(out.Documents, DocumentStatus{
			FileName: d.FileName,
			Valid:    d.Valid,
			Error:    d.Error,
		})
	}

	return out
}
