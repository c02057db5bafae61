package notice

import (
	"context"
	"sort"
	"time"

	"campusattend/internal/apperr"
)

// AudienceAllStudents makes a notice visible to every student regardless of
// semester.
const AudienceAllStudents = "All Students"

// SemesterAll scopes a notice to every semester.
const SemesterAll = "all"

// Notice is an admin-authored announcement with per-user reactions.
// Reactions map user id to a reaction string; one reaction per user, latest
// wins. Reaction values are not validated server-side.
type Notice struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Content        string            `json:"content"`
	TargetAudience string            `json:"targetAudience"`
	Semester       string            `json:"semester"`
	Attachments    []string          `json:"attachments"`
	PostedBy       string            `json:"postedBy"`
	PostedOn       string            `json:"postedOn"`
	PostedSeq      int64             `json:"-"`
	Reactions      map[string]string `json:"reactions"`
}

// Store persists notices.
type Store interface {
	Create(ctx context.Context, n Notice) error
	Get(ctx context.Context, id string) (*Notice, error)
	Save(ctx context.Context, n Notice) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Notice, error)
}

// Service implements the notice board.
type Service struct {
	store Store
	newID func() string
	now   func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store, newID func() string) *Service {
	return &Service{store: store, newID: newID, now: time.Now}
}

// CreateParams carries the fields for a new notice.
type CreateParams struct {
	Title          string
	Content        string
	TargetAudience string
	Semester       string
	Attachments    []string
}

// Create posts a new notice. An empty semester scopes it to all.
func (s *Service) Create(ctx context.Context, p CreateParams, postedBy string) (Notice, error) {
	semester := p.Semester
	if semester == "" {
		semester = SemesterAll
	}
	attachments := p.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	now := s.now()
	n := Notice{
		ID:             s.newID(),
		Title:          p.Title,
		Content:        p.Content,
		TargetAudience: p.TargetAudience,
		Semester:       semester,
		Attachments:    attachments,
		PostedBy:       postedBy,
		PostedOn:       now.Format("02 Jan 2006"),
		PostedSeq:      now.UnixMilli(),
		Reactions:      map[string]string{},
	}
	if err := s.store.Create(ctx, n); err != nil {
		return Notice{}, err
	}
	return n, nil
}

// Update merges non-nil fields into an existing notice.
type Update struct {
	Title          *string   `json:"title"`
	Content        *string   `json:"content"`
	TargetAudience *string   `json:"targetAudience"`
	Semester       *string   `json:"semester"`
	Attachments    *[]string `json:"attachments"`
}

// Update edits an existing notice.
func (s *Service) Update(ctx context.Context, id string, upd Update) (Notice, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return Notice{}, err
	}
	if existing == nil {
		return Notice{}, apperr.NotFound("notice not found")
	}
	n := *existing
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.TargetAudience != nil {
		n.TargetAudience = *upd.TargetAudience
	}
	if upd.Semester != nil {
		n.Semester = *upd.Semester
	}
	if upd.Attachments != nil {
		n.Attachments = *upd.Attachments
	}
	if err := s.store.Save(ctx, n); err != nil {
		return Notice{}, err
	}
	return n, nil
}

// Delete removes a notice by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// React upserts the user's reaction on a notice; the latest reaction wins.
func (s *Service) React(ctx context.Context, noticeID, userID, reaction string) (Notice, error) {
	existing, err := s.store.Get(ctx, noticeID)
	if err != nil {
		return Notice{}, err
	}
	if existing == nil {
		return Notice{}, apperr.NotFound("notice not found")
	}
	n := *existing
	if n.Reactions == nil {
		n.Reactions = map[string]string{}
	}
	n.Reactions[userID] = reaction
	if err := s.store.Save(ctx, n); err != nil {
		return Notice{}, err
	}
	return n, nil
}

// All lists every notice, newest first.
func (s *Service) All(ctx context.Context) ([]Notice, error) {
	notices, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(notices)
	return notices, nil
}

// VisibleTo lists the notices a student in the given semester may see,
// newest first. Any one of the three conditions suffices.
func (s *Service) VisibleTo(ctx context.Context, semester string) ([]Notice, error) {
	notices, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := notices[:0]
	for _, n := range notices {
		if Visible(n, semester) {
			visible = append(visible, n)
		}
	}
	sortNewestFirst(visible)
	return visible, nil
}

// Visible reports whether a student in the given semester may see the notice.
func Visible(n Notice, semester string) bool {
	return n.TargetAudience == AudienceAllStudents ||
		n.Semester == SemesterAll ||
		n.Semester == semester
}

func sortNewestFirst(notices []Notice) {
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].PostedSeq > notices[j].PostedSeq
	})
}
