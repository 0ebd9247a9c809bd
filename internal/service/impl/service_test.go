package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/service"
	storageinterface "github.com/hearthy-foundation/hearth/internal/storage"
	storage "github.com/hearthy-foundation/hearth/internal/storage/mock"
)

var errTest = errors.New("test")

func newTestSrv(s storageinterface.Storage) srv {
	var seq int

	return srv{
		s:   s,
		now: func() time.Time { return time.Date(2021, 1, 15, 12, 0, 0, 0, time.UTC) },
		newID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}
}

func expectInTx(s *storage.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(storageinterface.Storage) error) error {
		return f(s)
	})
}

func verifiedProfile() *entities.Profile {
	return &entities.Profile{
		ID:                 "user-1",
		FullName:           "Anna Kowalska",
		VerificationStatus: entities.VerifiedLevel1,
		Location:           "Warsaw, Poland",
	}
}

func TestSrv_RegisterVolunteer_Validation(t *testing.T) {
	tt := []struct {
		name string
		r    service.VolunteerRegistration

		violations []string
	}{
		{
			name: "empty",
			r:    service.VolunteerRegistration{},
			violations: []string{
				"First name is required",
				"Last name is required",
				"Email is required",
				"Password is required",
				"Password must be at least 8 characters long",
			},
		},
		{
			name: "invalid email",
			r: service.VolunteerRegistration{
				FirstName:       "Anna",
				LastName:        "Kowalska",
				Email:           "not-an-email",
				Password:        "password123",
				ConfirmPassword: "password123",
			},
			violations: []string{"Invalid email format"},
		},
		{
			name: "short password",
			r: service.VolunteerRegistration{
				FirstName:       "Anna",
				LastName:        "Kowalska",
				Email:           "anna@example.com",
				Password:        "short",
				ConfirmPassword: "short",
			},
			violations: []string{"Password must be at least 8 characters long"},
		},
		{
			name: "passwords mismatch",
			r: service.VolunteerRegistration{
				FirstName:       "Anna",
				LastName:        "Kowalska",
				Email:           "anna@example.com",
				Password:        "password123",
				ConfirmPassword: "password124",
			},
			violations: []string{"Passwords do not match"},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newTestSrv(storage.NewMockStorage(ctrl))

			_, err := s.RegisterVolunteer(context.Background(), &tc.r)

			var validationErr *service.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.violations, validationErr.Violations)
		})
	}
}

func TestSrv_RegisterVolunteer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateProfileParams) (*entities.Profile, error) {
			assert.Equal(t, "Anna Kowalska", p.FullName)
			assert.Equal(t, "anna@example.com", p.Email)
			assert.Equal(t, "Poland", p.Location)
			assert.Equal(t, "I want to help", p.Bio)
			assert.Equal(t, entities.NotVerified, p.VerificationStatus)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("password123")))

			return &entities.Profile{ID: p.ID}, nil
		})
	ms.EXPECT().CreateVolunteerApplication(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.VolunteerApplicationParams) error {
			assert.Equal(t, "Anna Kowalska", p.FullName)
			assert.Equal(t, "+48123456789", p.Phone)
			assert.Equal(t, "pending", p.Status)

			return nil
		})

	res, err := s.RegisterVolunteer(context.Background(), &service.VolunteerRegistration{
		FirstName:       "Anna",
		LastName:        "Kowalska",
		Email:           "anna@example.com",
		Phone:           "+48123456789",
		Motivation:      "I want to help",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
}

func TestSrv_RegisterVolunteer_Minimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	// no extended fields, no application row
	ms.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(&entities.Profile{ID: "id-1"}, nil)

	res, err := s.RegisterVolunteer(context.Background(), &service.VolunteerRegistration{
		FirstName:       "Anna",
		LastName:        "Kowalska",
		Email:           "anna@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", res.ID)
}

func TestSrv_RegisterVolunteer_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, storageinterface.ErrEmailTaken)

	_, err := s.RegisterVolunteer(context.Background(), &service.VolunteerRegistration{
		FirstName:       "Anna",
		LastName:        "Kowalska",
		Email:           "anna@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.True(t, errors.Is(err, service.ErrEmailTaken))
}

func TestSrv_RegisterCareFacility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateCareFacilityApplication(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.FacilityApplicationParams) (string, error) {
			assert.Equal(t, "Dom Seniora", p.Name)
			assert.Equal(t, "pending", p.Status)

			return p.ID, nil
		})
	// only the valid documents are persisted
	docs := map[string]string{}
	ms.EXPECT().CreateCareFacilityDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *entities.Document) error {
			assert.Empty(t, d.FileURL)
			docs[d.FileName] = d.DocumentType

			return nil
		}).Times(2)

	res, err := s.RegisterCareFacility(context.Background(), &service.OrganizationRegistration{
		Name:            "Dom Seniora",
		Email:           "facility@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Documents: []service.DocumentUpload{
			// doc statutes within the 10MB ceiling are accepted
			{FileName: "statute.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FileSize: 1 << 20},
			{FileName: "krs.pdf", ContentType: "application/pdf", FileSize: 9 << 20},
			{FileName: "huge.pdf", ContentType: "application/pdf", FileSize: 11 << 20},
			{FileName: "notes.txt", ContentType: "text/plain", FileSize: 100},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Documents, 4)
	assert.True(t, res.Documents[0].Valid)
	assert.True(t, res.Documents[1].Valid)
	assert.False(t, res.Documents[2].Valid)
	assert.Equal(t, "File size must be less than 10MB", res.Documents[2].Error)
	assert.False(t, res.Documents[3].Valid)
	assert.Equal(t, "Only PDF, JPEG, PNG and DOC files are accepted", res.Documents[3].Error)

	assert.Equal(t, map[string]string{"statute.docx": "docx", "krs.pdf": "pdf"}, docs)
}

func TestSrv_RegisterCareFacility_NoDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestSrv(storage.NewMockStorage(ctrl))

	_, err := s.RegisterCareFacility(context.Background(), &service.OrganizationRegistration{
		Name:            "Dom Seniora",
		Email:           "facility@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})

	var validationErr *service.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Violations, "Please upload at least one document")
}

func TestSrv_RegisterFoundation_Documents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateFoundationApplication(gomock.Any(), gomock.Any()).Return("f-1", nil)
	ms.EXPECT().CreateFoundationDocument(gomock.Any(), gomock.Any()).Times(2)

	res, err := s.RegisterFoundation(context.Background(), &service.OrganizationRegistration{
		Name:            "Fundacja",
		Email:           "foundation@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Documents: []service.DocumentUpload{
			{FileName: "krs.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FileSize: 8 << 20},
			{FileName: "statute.pdf", ContentType: "application/pdf", FileSize: 9 << 20},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "f-1", res.ID)
	assert.True(t, res.Documents[0].Valid)
	assert.True(t, res.Documents[1].Valid)
}

func TestSrv_SubmitContactRequest(t *testing.T) {
	tt := []struct {
		name string
		r    service.ContactRequest

		violations []string
	}{
		{
			name:       "empty",
			r:          service.ContactRequest{Message: "hello"},
			violations: []string{"Please provide your name and email address"},
		},
		{
			name:       "invalid email",
			r:          service.ContactRequest{FullName: "Anna", Email: "nope"},
			violations: []string{"Please provide a valid email address"},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newTestSrv(storage.NewMockStorage(ctrl))

			err := s.SubmitContactRequest(context.Background(), &tc.r)

			var validationErr *service.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.violations, validationErr.Violations)
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ms := storage.NewMockStorage(ctrl)
		s := newTestSrv(ms)

		ms.EXPECT().CreateContactRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *storageinterface.ContactRequestParams) error {
				assert.Equal(t, "new", p.Status)
				assert.Equal(t, "Anna", p.FullName)

				return nil
			})

		require.NoError(t, s.SubmitContactRequest(context.Background(), &service.ContactRequest{
			FullName: "Anna",
			Email:    "anna@example.com",
			Message:  "hello",
		}))
	})
}

func TestSrv_ListFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.ListPostsParams) ([]*entities.Post, error) {
			require.NotNil(t, p.Category)
			assert.Equal(t, entities.HealthCategory, *p.Category)
			require.NotNil(t, p.Location)
			assert.Equal(t, "Warsaw", *p.Location)

			return []*entities.Post{{ID: "p-1"}, {ID: "p-2"}}, nil
		})
	ms.EXPECT().GetComments(gomock.Any(), "p-1", "p-2").Return(map[string][]*entities.Comment{
		"p-1": {{ID: "c-1", PostID: "p-1"}},
	}, nil)
	ms.EXPECT().GetLikes(gomock.Any(), "user-1", "p-1", "p-2").Return(map[string]bool{"p-2": true}, nil)

	posts, err := s.ListFeed(context.Background(), &service.FeedParams{
		Category:    "health",
		Location:    "Warsaw",
		RequestedBy: "user-1",
		Limit:       20,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Len(t, posts[0].Comments, 1)
	assert.False(t, posts[0].UserHasLiked)
	assert.True(t, posts[1].UserHasLiked)
}

func TestSrv_ListFeed_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	// category "all" bypasses filtering, likes are not fetched
	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.ListPostsParams) ([]*entities.Post, error) {
			assert.Nil(t, p.Category)
			assert.Nil(t, p.Location)

			return []*entities.Post{{ID: "p-1"}}, nil
		})
	ms.EXPECT().GetComments(gomock.Any(), "p-1").Return(map[string][]*entities.Comment{}, nil)

	posts, err := s.ListFeed(context.Background(), &service.FeedParams{Category: "all", Limit: 20})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.False(t, posts[0].UserHasLiked)
}

func TestSrv_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreatePostParams) (*entities.Post, error) {
			assert.Equal(t, "user-1", p.AuthorID)
			assert.Equal(t, "Anna Kowalska", p.AuthorName)

			return &entities.Post{ID: p.ID, Content: p.Content}, nil
		})
	ms.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateActivityParams) error {
			assert.Equal(t, "post_created", p.Type)
			assert.Equal(t, 10, p.Points)

			return nil
		})
	ms.EXPECT().AddProfilePoints(gomock.Any(), "user-1", 10).Return(nil)

	post, err := s.CreatePost(context.Background(), verifiedProfile(), "hello", entities.HealthCategory, "Warsaw")
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Content)
	assert.NotNil(t, post.Comments)
}

func TestSrv_CreatePost_ReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestSrv(storage.NewMockStorage(ctrl))

	p := verifiedProfile()
	p.VerificationStatus = entities.NotVerified

	_, err := s.CreatePost(context.Background(), p, "hello", entities.HealthCategory, "")
	require.True(t, errors.Is(err, service.ErrReadOnly))
}

func TestSrv_CreatePost_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestSrv(storage.NewMockStorage(ctrl))

	_, err := s.CreatePost(context.Background(), verifiedProfile(), " ", "bad-category", "")

	var validationErr *service.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"Content is required", "Invalid category"}, validationErr.Violations)
}

func TestSrv_ToggleLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().GetLikes(gomock.Any(), "user-1", "p-1").Return(map[string]bool{}, nil)
	ms.EXPECT().CreateLike(gomock.Any(), "p-1", "user-1").Return(true, nil)
	ms.EXPECT().AddPostLikes(gomock.Any(), "p-1", 1).Return(uint32(5), nil)

	res, err := s.ToggleLike(context.Background(), verifiedProfile(), "p-1")
	require.NoError(t, err)
	assert.True(t, res.UserHasLiked)
	assert.EqualValues(t, 5, res.LikesCount)

	expectInTx(ms)
	ms.EXPECT().GetLikes(gomock.Any(), "user-1", "p-1").Return(map[string]bool{"p-1": true}, nil)
	ms.EXPECT().DeleteLike(gomock.Any(), "p-1", "user-1").Return(true, nil)
	ms.EXPECT().AddPostLikes(gomock.Any(), "p-1", -1).Return(uint32(4), nil)

	res, err = s.ToggleLike(context.Background(), verifiedProfile(), "p-1")
	require.NoError(t, err)
	assert.False(t, res.UserHasLiked)
	assert.EqualValues(t, 4, res.LikesCount)
}

func TestSrv_ToggleLike_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().GetLikes(gomock.Any(), "user-1", "p-404").Return(map[string]bool{}, nil)
	ms.EXPECT().CreateLike(gomock.Any(), "p-404", "user-1").Return(false, storageinterface.ErrNotFound)

	_, err := s.ToggleLike(context.Background(), verifiedProfile(), "p-404")
	require.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateComment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateCommentParams) (*entities.Comment, error) {
			assert.Equal(t, "p-1", p.PostID)
			assert.Equal(t, "Anna Kowalska", p.UserName)

			return &entities.Comment{ID: p.ID, Content: p.Content}, nil
		})
	ms.EXPECT().AddPostComments(gomock.Any(), "p-1", 1).Return(uint32(3), nil)

	res, err := s.AddComment(context.Background(), verifiedProfile(), "p-1", "nice")
	require.NoError(t, err)
	assert.Equal(t, "nice", res.Comment.Content)
	assert.EqualValues(t, 3, res.CommentsCount)
}

func TestSrv_ListEvents_LocationSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	ms.EXPECT().ListUpcomingEvents(gomock.Any(), gomock.Any()).Return([]*entities.Event{
		{ID: "e-1", Location: "Warsaw, Mazovia"},
		{ID: "e-2", Location: "Central Warsaw, Poland"},
		{ID: "e-3", Location: "Warsaw, Poland"},
		{ID: "e-4", Location: "Berlin, Germany"},
	}, nil)

	events, err := s.ListEvents(context.Background(), &service.EventsParams{
		SortBy:       storageinterface.EventLocationSortType,
		UserLocation: "Warsaw, Poland",
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	// exact match, then containment, then shared city, then the rest
	assert.Equal(t, []string{"e-3", "e-2", "e-1", "e-4"}, ids)
}

func TestSrv_ListEvents_LocationSortLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	// the fetch is unlimited, otherwise the page would be cut in id order
	// before proximity is known
	ms.EXPECT().ListUpcomingEvents(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.ListEventsParams) ([]*entities.Event, error) {
			assert.EqualValues(t, 0, p.Limit)

			return []*entities.Event{
				{ID: "e-1", Location: "Berlin, Germany"},
				{ID: "e-2", Location: "Central Warsaw, Poland"},
				{ID: "e-3", Location: "Warsaw, Poland"},
			}, nil
		})

	events, err := s.ListEvents(context.Background(), &service.EventsParams{
		SortBy:       storageinterface.EventLocationSortType,
		UserLocation: "Warsaw, Poland",
		Limit:        2,
	})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "e-3", events[0].ID)
	assert.Equal(t, "e-2", events[1].ID)
}

func TestSrv_JoinEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	ms.EXPECT().CreateAttendance(gomock.Any(), "e-1", "user-1").Return(true, nil)
	ms.EXPECT().AddEventAttendees(gomock.Any(), "e-1", 1).Return(uint32(11), nil)
	ms.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateActivityParams) error {
			assert.Equal(t, "event_joined", p.Type)
			assert.Equal(t, 30, p.Points)

			return nil
		})
	ms.EXPECT().AddProfilePoints(gomock.Any(), "user-1", 30).Return(nil)
	ms.EXPECT().GetEvent(gomock.Any(), "e-1").Return(&entities.Event{ID: "e-1", AttendeesCount: 11}, nil)

	event, err := s.JoinEvent(context.Background(), verifiedProfile(), "e-1")
	require.NoError(t, err)
	assert.EqualValues(t, 11, event.AttendeesCount)
}

func TestSrv_JoinEvent_AlreadyJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	expectInTx(ms)
	// repeated join neither bumps the counter nor awards points
	ms.EXPECT().CreateAttendance(gomock.Any(), "e-1", "user-1").Return(false, nil)
	ms.EXPECT().GetEvent(gomock.Any(), "e-1").Return(&entities.Event{ID: "e-1", AttendeesCount: 11}, nil)

	event, err := s.JoinEvent(context.Background(), verifiedProfile(), "e-1")
	require.NoError(t, err)
	assert.EqualValues(t, 11, event.AttendeesCount)
}

func TestSrv_Ranking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	profiles := []*entities.Profile{
		{ID: "a", Points: 100},
		{ID: "b", Points: 80},
		{ID: "c", Points: 80},
		{ID: "d", Points: 50},
	}

	ms.EXPECT().ListProfilesByPoints(gomock.Any()).Return(profiles, nil).Times(3)

	r, err := s.Ranking(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, 2, r.UserRank)

	r, err = s.Ranking(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, 3, r.UserRank)

	r, err = s.Ranking(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Zero(t, r.UserRank)
}

func TestSrv_Ranking_Top10(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	profiles := make([]*entities.Profile, 15)
	for i := range profiles {
		profiles[i] = &entities.Profile{ID: fmt.Sprintf("u-%d", i), Points: 150 - i*10}
	}

	ms.EXPECT().ListProfilesByPoints(gomock.Any()).Return(profiles, nil)

	r, err := s.Ranking(context.Background(), "u-12")
	require.NoError(t, err)
	assert.Len(t, r.Top, 10)
	assert.Equal(t, 13, r.UserRank)
}

func TestSrv_UrgentNeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	ms.EXPECT().CountOpportunities(gomock.Any(), entities.UrgentUrgency, "active").Return(uint32(5), nil)
	ms.EXPECT().ListOpportunities(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.ListOpportunitiesParams) ([]*entities.Opportunity, error) {
			assert.EqualValues(t, 3, p.Limit)

			return []*entities.Opportunity{{ID: "o-1"}, {ID: "o-2"}, {ID: "o-3"}}, nil
		})

	needs, err := s.UrgentNeeds(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, needs.Total)
	assert.EqualValues(t, 2, needs.Remaining)
}

func TestSrv_UrgentNeeds_NoRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	ms.EXPECT().CountOpportunities(gomock.Any(), entities.UrgentUrgency, "active").Return(uint32(2), nil)
	ms.EXPECT().ListOpportunities(gomock.Any(), gomock.Any()).Return([]*entities.Opportunity{{ID: "o-1"}, {ID: "o-2"}}, nil)

	needs, err := s.UrgentNeeds(context.Background())
	require.NoError(t, err)
	assert.Zero(t, needs.Remaining)
}

func TestSrv_OpportunityBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	gomock.InOrder(
		ms.EXPECT().ListOpportunities(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *storageinterface.ListOpportunitiesParams) ([]*entities.Opportunity, error) {
				assert.Equal(t, entities.ImmediateUrgency, *p.Urgency)

				return []*entities.Opportunity{{ID: "o-1"}}, nil
			}),
		ms.EXPECT().ListOpportunities(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *storageinterface.ListOpportunitiesParams) ([]*entities.Opportunity, error) {
				assert.Equal(t, entities.OngoingUrgency, *p.Urgency)

				return []*entities.Opportunity{{ID: "o-2"}}, nil
			}),
	)

	board, err := s.OpportunityBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Immediate, 1)
	require.Len(t, board.Ongoing, 1)
}

func TestSrv_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := storage.NewMockStorage(ctrl)
	s := newTestSrv(ms)

	ms.EXPECT().ListProfilesByPoints(gomock.Any()).Return(nil, errTest)

	_, err := s.Ranking(context.Background(), "")
	require.True(t, errors.Is(err, errTest))
}

func TestLocationDistance(t *testing.T) {
	assert.Equal(t, 0, locationDistance("Warsaw, Poland", "warsaw, poland"))
	assert.Equal(t, 1, locationDistance("Warsaw", "Warsaw, Poland"))
	assert.Equal(t, 2, locationDistance("Warsaw, Mazovia", "Warsaw, Poland"))
	assert.Equal(t, 3, locationDistance("Krakow, Poland", "Warsaw, Poland"))
}
