package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"lawhub_backend/internal/models"
	"lawhub_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored; services are
// exercised without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("user-%d", r.seq)
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = r.nextID()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByAuthID(_ *gorm.DB, authID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.AuthID == authID {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByConfirmToken(_ *gorm.DB, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ConfirmToken == token && token != "" {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.LawyerProfile
	seq      int

	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.LawyerProfile)}
}

func (r *fakeProfileRepo) Create(_ *gorm.DB, profile *models.LawyerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		r.seq++
		profile.ID = fmt.Sprintf("profile-%d", r.seq)
	}
	profile.CreatedAt = time.Now()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(_ *gorm.DB, id string) (*models.LawyerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.LawyerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) ListByStatus(_ *gorm.DB, status models.ApprovalStatus) ([]models.LawyerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.LawyerProfile
	for _, p := range r.profiles {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProfileRepo) UpdateStatus(_ *gorm.DB, id string, status models.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.Status = status
	return nil
}

type fakeReviewRepo struct {
	mu         sync.Mutex
	company    map[string]*models.CompanyReview
	interview  map[string]*models.InterviewReview
	seq        int
	clock      time.Time
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		company:   make(map[string]*models.CompanyReview),
		interview: make(map[string]*models.InterviewReview),
		clock:     time.Now(),
	}
}

func (r *fakeReviewRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeReviewRepo) CreateCompany(_ *gorm.DB, review *models.CompanyReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = fmt.Sprintf("company-%d", r.seq)
	review.CreatedAt = r.tick()
	r.company[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindCompanyByID(_ *gorm.DB, id string) (*models.CompanyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rv, ok := r.company[id]; ok {
		copied := *rv
		return &copied, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) UpdateCompany(_ *gorm.DB, review *models.CompanyReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.company[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	r.company[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) UpdateCompanyStatus(_ *gorm.DB, id string, status models.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.company[id]
	if !ok {
		return repositories.ErrReviewNotFound
	}
	rv.Status = status
	return nil
}

func (r *fakeReviewRepo) ListCompanyByUser(_ *gorm.DB, userID string) ([]models.CompanyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CompanyReview
	for _, rv := range r.company {
		if rv.UserID == userID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) ListCompanyByStatus(_ *gorm.DB, status models.ApprovalStatus) ([]models.CompanyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CompanyReview
	for _, rv := range r.company {
		if rv.Status == status {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) ListAllCompany(_ *gorm.DB) ([]models.CompanyReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CompanyReview
	for _, rv := range r.company {
		out = append(out, *rv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) CreateInterview(_ *gorm.DB, review *models.InterviewReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = fmt.Sprintf("interview-%d", r.seq)
	review.CreatedAt = r.tick()
	r.interview[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindInterviewByID(_ *gorm.DB, id string) (*models.InterviewReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rv, ok := r.interview[id]; ok {
		copied := *rv
		return &copied, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) UpdateInterview(_ *gorm.DB, review *models.InterviewReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interview[review.ID]; !ok {
		return repositories.ErrReviewNotFound
	}
	r.interview[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) UpdateInterviewStatus(_ *gorm.DB, id string, status models.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.interview[id]
	if !ok {
		return repositories.ErrReviewNotFound
	}
	rv.Status = status
	return nil
}

func (r *fakeReviewRepo) ListInterviewByUser(_ *gorm.DB, userID string) ([]models.InterviewReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewReview
	for _, rv := range r.interview {
		if rv.UserID == userID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) ListInterviewByStatus(_ *gorm.DB, status models.ApprovalStatus) ([]models.InterviewReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewReview
	for _, rv := range r.interview {
		if rv.Status == status {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) ListAllInterview(_ *gorm.DB) ([]models.InterviewReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewReview
	for _, rv := range r.interview {
		out = append(out, *rv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) FindByToken(_ *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[tokenString]; ok {
		return t, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeTokenRepo) DeleteByToken(_ *gorm.DB, tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenString)
	return nil
}

func (r *fakeTokenRepo) DeleteByUserID(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(_ *gorm.DB) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for k, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			delete(r.tokens, k)
		}
	}
	return nil
}

// fakeStorage records saves and deletes; signed URLs are deterministic.
type fakeStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	data, _ := io.ReadAll(reader)
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://signed.example.com/" + path, nil
}
