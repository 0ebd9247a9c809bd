// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	ID                 string         `db:"id"`
	FullName           string         `db:"full_name"`
	Email              string         `db:"email"`
	PasswordHash       string         `db:"password_hash"`
	Location           string         `db:"location"`
	Bio                string         `db:"bio"`
	Skills             pq.StringArray `db:"skills"`
	Interests          pq.StringArray `db:"interests"`
	Points             int            `db:"points"`
	AvatarURL          string         `db:"avatar_url"`
	VerificationStatus string         `db:"verification_status"`
	CreatedAt          time.Time      `db:"created_at"`
}

type postDTO struct {
	ID            string    `db:"id"`
	AuthorID      string    `db:"author_id"`
	AuthorName    string    `db:"author_name"`
	Content       string    `db:"content"`
	Category      string    `db:"category"`
	Location      string    `db:"location"`
	LikesCount    uint32    `db:"likes_count"`
	CommentsCount uint32    `db:"comments_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type commentDTO struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type eventDTO struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Category       string    `db:"category"`
	Location       string    `db:"location"`
	EventDate      time.Time `db:"event_date"`
	Organizer      string    `db:"organizer"`
	AttendeesCount uint32    `db:"attendees_count"`
}

type opportunityDTO struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Institution string    `db:"institution"`
	Location    string    `db:"location"`
	Urgency     string    `db:"urgency"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type activityDTO struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Type        string    `db:"activity_type"`
	Description string    `db:"description"`
	Points      int       `db:"points"`
	CreatedAt   time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateProfile(ctx context.Context, p *storage.CreateProfileParams) (*entities.Profile, error) {
	dto := profileDTO{
		ID:                 p.ID,
		FullName:           p.FullName,
		Email:              p.Email,
		PasswordHash:       p.PasswordHash,
		Location:           p.Location,
		Bio:                p.Bio,
		Skills:             p.Skills,
		Interests:          p.Interests,
		VerificationStatus: string(p.VerificationStatus),
	}

	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO user_profiles(id, full_name, email, password_hash, location, bio, skills, interests, verification_status)
			VALUES(:id, :full_name, :email, :password_hash, :location, :bio, :skills, :interests, :verification_status)
			RETURNING id, full_name, email, password_hash, location, bio, skills, interests, points, avatar_url, verification_status, created_at
		`, dto,
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return nil, storage.ErrEmailTaken
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to scan inserted profile: %w", sql.ErrNoRows)
	}

	var out profileDTO
	if err := rows.StructScan(&out); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return toProfile(&out), nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	return s.getProfile(ctx, `id = $1`, id)
}

func (s pg) GetProfileByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return s.getProfile(ctx, `email = $1`, email)
}

func (s pg) getProfile(ctx context.Context, where string, arg interface{}) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, fmt.Sprintf(`
			SELECT id, full_name, email, password_hash, location, bio, skills, interests, points, avatar_url, verification_status, created_at
			FROM user_profiles
			WHERE %s
		`, where), arg,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) ListProfilesByPoints(ctx context.Context) ([]*entities.Profile, error) {
	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, `
			SELECT id, full_name, email, password_hash, location, bio, skills, interests, points, avatar_url, verification_status, created_at
			FROM user_profiles
			ORDER BY points DESC, created_at ASC, id ASC
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) AddProfilePoints(ctx context.Context, userID string, delta int) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE user_profiles SET points = GREATEST(0, points + $2) WHERE id = $1`,
		userID, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateSession(ctx context.Context, sess *entities.Session) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO sessions(token, user_id, created_at, expires_at) VALUES($1, $2, $3, $4)`,
		sess.Token, sess.UserID, sess.CreatedAt.UTC(), sess.ExpiresAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetSession(ctx context.Context, token string) (*entities.Session, error) {
	var out struct {
		Token     string    `db:"token"`
		UserID    string    `db:"user_id"`
		CreatedAt time.Time `db:"created_at"`
		ExpiresAt time.Time `db:"expires_at"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &out,
		`SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1 AND expires_at > now()`,
		token,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Session{
		Token:     out.Token,
		UserID:    out.UserID,
		CreatedAt: out.CreatedAt,
		ExpiresAt: out.ExpiresAt,
	}, nil
}

func (s pg) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `
		SELECT id, author_id, author_name, content, category, location, likes_count, comments_count, created_at
		FROM posts
	`

	var (
		where []string
		args  []interface{}
	)

	if p.Category != nil {
		args = append(args, string(*p.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	if p.Location != nil {
		args = append(args, "%"+*p.Location+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	for i, v := range where {
		if i == 0 {
			query += " WHERE "
		} else {
			query += " AND "
		}
		query += v
	}

	query += " ORDER BY created_at DESC, id DESC"

	if p.Limit > 0 {
		args = append(args, p.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) (*entities.Post, error) {
	dto := postDTO{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Category:   string(p.Category),
		Location:   p.Location,
		CreatedAt:  p.CreatedAt.UTC(),
	}

	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO posts(id, author_id, author_name, content, category, location, likes_count, comments_count, created_at)
			VALUES(:id, :author_id, :author_name, :content, :category, :location, 0, 0, :created_at)
			RETURNING id, author_id, author_name, content, category, location, likes_count, comments_count, created_at
		`, dto,
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to scan inserted post: %w", sql.ErrNoRows)
	}

	var out postDTO
	if err := rows.StructScan(&out); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return toPost(&out), nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, author_id, author_name, content, category, location, likes_count, comments_count, created_at
			FROM posts
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) GetComments(ctx context.Context, postID ...string) (map[string][]*entities.Comment, error) {
	out := make(map[string][]*entities.Comment, len(postID))

	if len(postID) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT id, post_id, user_id, user_name, content, created_at FROM post_comments
			WHERE post_id IN (?)
			ORDER BY created_at ASC, id ASC
		`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var cc []*commentDTO
	if err := sqlx.SelectContext(ctx, s.ext, &cc, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range cc {
		out[v.PostID] = append(out[v.PostID], &entities.Comment{
			ID:        v.ID,
			PostID:    v.PostID,
			UserID:    v.UserID,
			UserName:  v.UserName,
			Content:   v.Content,
			CreatedAt: v.CreatedAt,
		})
	}

	return out, nil
}

func (s pg) CreateComment(ctx context.Context, p *storage.CreateCommentParams) (*entities.Comment, error) {
	dto := commentDTO{
		ID:        p.ID,
		PostID:    p.PostID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.UTC(),
	}

	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO post_comments(id, post_id, user_id, user_name, content, created_at)
			VALUES(:id, :post_id, :user_id, :user_name, :content, :created_at)
			RETURNING id, post_id, user_id, user_name, content, created_at
		`, dto,
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to scan inserted comment: %w", sql.ErrNoRows)
	}

	var out commentDTO
	if err := rows.StructScan(&out); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return &entities.Comment{
		ID:        out.ID,
		PostID:    out.PostID,
		UserID:    out.UserID,
		UserName:  out.UserName,
		Content:   out.Content,
		CreatedAt: out.CreatedAt,
	}, nil
}

func (s pg) GetLikes(ctx context.Context, likedBy string, postID ...string) (map[string]bool, error) {
	out := make(map[string]bool, len(postID))

	if len(postID) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT post_id FROM post_likes WHERE user_id = ? AND post_id IN (?)
		`, likedBy, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var ids []string
	if err := sqlx.SelectContext(ctx, s.ext, &ids, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, id := range ids {
		out[id] = true
	}

	return out, nil
}

func (s pg) CreateLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`INSERT INTO post_likes(post_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID,
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) AddPostLikes(ctx context.Context, postID string, delta int) (uint32, error) {
	return s.addCounter(ctx, `UPDATE posts SET likes_count = GREATEST(0, likes_count + $2) WHERE id = $1 RETURNING likes_count`, postID, delta)
}

func (s pg) AddPostComments(ctx context.Context, postID string, delta int) (uint32, error) {
	return s.addCounter(ctx, `UPDATE posts SET comments_count = GREATEST(0, comments_count + $2) WHERE id = $1 RETURNING comments_count`, postID, delta)
}

func (s pg) AddEventAttendees(ctx context.Context, eventID string, delta int) (uint32, error) {
	return s.addCounter(ctx, `UPDATE events SET attendees_count = GREATEST(0, attendees_count + $2) WHERE id = $1 RETURNING attendees_count`, eventID, delta)
}

func (s pg) addCounter(ctx context.Context, query, id string, delta int) (uint32, error) {
	var out uint32

	if err := sqlx.GetContext(ctx, s.ext, &out, query, id, delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return out, nil
}

func (s pg) ListUpcomingEvents(ctx context.Context, p *storage.ListEventsParams) ([]*entities.Event, error) {
	query := `
		SELECT id, title, description, category, location, event_date, organizer, attendees_count
		FROM events
		WHERE event_date >= $1
	`

	switch p.SortBy {
	case storage.EventCategorySortType:
		query += ` ORDER BY category ASC, id ASC`
	case storage.EventLocationSortType:
		query += ` ORDER BY id ASC`
	default:
		query += ` ORDER BY event_date ASC, id ASC`
	}

	args := []interface{}{p.After.UTC()}
	if p.Limit > 0 {
		args = append(args, p.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var ee []*eventDTO
	if err := sqlx.SelectContext(ctx, s.ext, &ee, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Event, len(ee))
	for i, v := range ee {
		out[i] = toEvent(v)
	}

	return out, nil
}

func (s pg) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	var e eventDTO

	if err := sqlx.GetContext(ctx, s.ext, &e, `
			SELECT id, title, description, category, location, event_date, organizer, attendees_count
			FROM events
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toEvent(&e), nil
}

func (s pg) CreateAttendance(ctx context.Context, eventID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`INSERT INTO event_attendance(event_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		eventID, userID,
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) ListOpportunities(ctx context.Context, p *storage.ListOpportunitiesParams) ([]*entities.Opportunity, error) {
	query := `
		SELECT id, title, description, category, institution, location, urgency, status, created_at
		FROM opportunities
	`

	var (
		where []string
		args  []interface{}
	)

	if p.Urgency != nil {
		args = append(args, string(*p.Urgency))
		where = append(where, fmt.Sprintf("urgency = $%d", len(args)))
	}

	if p.Status != nil {
		args = append(args, *p.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	for i, v := range where {
		if i == 0 {
			query += " WHERE "
		} else {
			query += " AND "
		}
		query += v
	}

	query += " ORDER BY created_at DESC, id DESC"

	if p.Limit > 0 {
		args = append(args, p.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var oo []*opportunityDTO
	if err := sqlx.SelectContext(ctx, s.ext, &oo, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Opportunity, len(oo))
	for i, v := range oo {
		out[i] = &entities.Opportunity{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Category:    entities.Category(v.Category),
			Institution: v.Institution,
			Location:    v.Location,
			Urgency:     entities.Urgency(v.Urgency),
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CountOpportunities(ctx context.Context, urgency entities.Urgency, status string) (uint32, error) {
	var c uint32

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT COUNT(*) FROM opportunities WHERE urgency = $1 AND status = $2`,
		string(urgency), status,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

type volunteerApplicationDTO struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	DateOfBirth string `db:"date_of_birth"`
	Profession  string `db:"profession"`
	Experience  string `db:"experience"`
	Motivation  string `db:"motivation"`
	Status      string `db:"status"`
}

func (s pg) CreateVolunteerApplication(ctx context.Context, p *storage.VolunteerApplicationParams) error {
	dto := volunteerApplicationDTO{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
		Profession:  p.Profession,
		Experience:  p.Experience,
		Motivation:  p.Motivation,
		Status:      p.Status,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO volunteer_registrations(id, full_name, email, phone, date_of_birth, profession, experience, motivation, status)
			VALUES(:id, :full_name, :email, :phone, :date_of_birth, :profession, :experience, :motivation, :status)
		`, dto,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateCareFacilityApplication(ctx context.Context, p *storage.FacilityApplicationParams) (string, error) {
	return s.createFacilityApplication(ctx, `care_facility_registrations`, p)
}

func (s pg) CreateFoundationApplication(ctx context.Context, p *storage.FacilityApplicationParams) (string, error) {
	return s.createFacilityApplication(ctx, `foundation_registrations`, p)
}

type facilityApplicationDTO struct {
	ID                  string `db:"id"`
	Name                string `db:"name"`
	DateOfEstablishment string `db:"date_of_establishment"`
	BusinessProfile     string `db:"business_profile"`
	Address             string `db:"address"`
	KRS                 string `db:"krs"`
	Email               string `db:"email"`
	PasswordHash        string `db:"password_hash"`
	Status              string `db:"status"`
}

func (s pg) createFacilityApplication(ctx context.Context, table string, p *storage.FacilityApplicationParams) (string, error) {
	dto := facilityApplicationDTO{
		ID:                  p.ID,
		Name:                p.Name,
		DateOfEstablishment: p.DateOfEstablishment,
		BusinessProfile:     p.BusinessProfile,
		Address:             p.Address,
		KRS:                 p.KRS,
		Email:               p.Email,
		PasswordHash:        p.PasswordHash,
		Status:              p.Status,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, fmt.Sprintf(
		`
			INSERT INTO %s(id, name, date_of_establishment, business_profile, address, krs, email, password_hash, status)
			VALUES(:id, :name, :date_of_establishment, :business_profile, :address, :krs, :email, :password_hash, :status)
		`, table), dto,
	); err != nil {
		return "", fmt.Errorf("failed to exec: %w", err)
	}

	return p.ID, nil
}

func (s pg) CreateCareFacilityDocument(ctx context.Context, d *entities.Document) error {
	return s.createDocument(ctx, `care_facility_documents`, d)
}

func (s pg) CreateFoundationDocument(ctx context.Context, d *entities.Document) error {
	return s.createDocument(ctx, `foundation_documents`, d)
}

func (s pg) createDocument(ctx context.Context, table string, d *entities.Document) error {
	if _, err := s.ext.ExecContext(ctx, fmt.Sprintf(
		`
			INSERT INTO %s(id, registration_id, document_type, file_name, file_url, file_size)
			VALUES($1, $2, $3, $4, $5, $6)
		`, table),
		d.ID, d.RegistrationID, d.DocumentType, d.FileName, d.FileURL, d.FileSize,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateContactRequest(ctx context.Context, p *storage.ContactRequestParams) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO contact_requests(id, full_name, email, phone, message, status)
			VALUES($1, $2, $3, $4, $5, $6)
		`,
		p.ID, p.FullName, p.Email, p.Phone, p.Message, p.Status,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateActivity(ctx context.Context, p *storage.CreateActivityParams) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO user_activities(id, user_id, activity_type, description, points)
			VALUES($1, $2, $3, $4, $5)
		`,
		p.ID, p.UserID, p.Type, p.Description, p.Points,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListActivities(ctx context.Context, userID string) ([]*entities.Activity, error) {
	var aa []*activityDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa, `
			SELECT id, user_id, activity_type, description, points, created_at
			FROM user_activities
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Activity, len(aa))
	for i, v := range aa {
		out[i] = &entities.Activity{
			ID:          v.ID,
			UserID:      v.UserID,
			Type:        v.Type,
			Description: v.Description,
			Points:      v.Points,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) ListAssignedOpportunities(ctx context.Context, userID string) ([]*entities.AssignedOpportunity, error) {
	var aa []*struct {
		ID          string    `db:"id"`
		UserID      string    `db:"user_id"`
		Title       string    `db:"title"`
		Institution string    `db:"institution"`
		Status      string    `db:"status"`
		CreatedAt   time.Time `db:"created_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &aa, `
			SELECT id, user_id, title, institution, status, created_at
			FROM assigned_opportunities
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.AssignedOpportunity, len(aa))
	for i, v := range aa {
		out[i] = &entities.AssignedOpportunity{
			ID:          v.ID,
			UserID:      v.UserID,
			Title:       v.Title,
			Institution: v.Institution,
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) ListContentSections(ctx context.Context, view string) ([]*entities.ContentSection, error) {
	var cc []*struct {
		ID       string `db:"id"`
		View     string `db:"view"`
		Section  string `db:"section"`
		Title    string `db:"title"`
		Body     string `db:"body"`
		ImageURL string `db:"image_url"`
		Position int    `db:"position"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, view, section, title, body, image_url, position
			FROM content_sections
			WHERE view = $1
			ORDER BY position ASC, id ASC
		`, view,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ContentSection, len(cc))
	for i, v := range cc {
		out[i] = &entities.ContentSection{
			ID:       v.ID,
			View:     v.View,
			Section:  v.Section,
			Title:    v.Title,
			Body:     v.Body,
			ImageURL: v.ImageURL,
			Position: v.Position,
		}
	}

	return out, nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:                 p.ID,
		FullName:           p.FullName,
		Email:              p.Email,
		Location:           p.Location,
		Bio:                p.Bio,
		Skills:             p.Skills,
		Interests:          p.Interests,
		Points:             p.Points,
		AvatarURL:          p.AvatarURL,
		VerificationStatus: entities.VerificationStatus(p.VerificationStatus),
		CreatedAt:          p.CreatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		Content:       p.Content,
		Category:      entities.Category(p.Category),
		Location:      p.Location,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
	}
}

func toEvent(e *eventDTO) *entities.Event {
	return &entities.Event{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Category:       e.Category,
		Location:       e.Location,
		EventDate:      e.EventDate,
		Organizer:      e.Organizer,
		AttendeesCount: e.AttendeesCount,
	}
}
