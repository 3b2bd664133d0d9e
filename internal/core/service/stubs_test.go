package service

import (
	"context"
	"fmt"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int

	createCalls     int
	updateRoleCalls int
	updateRoleErr   error // if set, UpdateRole returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalls++
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.Email] = cloneUser(clone)
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) error {
	r.updateRoleCalls++
	if r.updateRoleErr != nil {
		return r.updateRoleErr
	}
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.AvatarURL = avatarURL
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubOfferRepo struct {
	offers      []*domain.JobOffer
	nextID      int
	createCalls int
	listErr     error // if set, reads return this error
}

func (r *stubOfferRepo) Create(_ context.Context, offer *domain.JobOffer) (*domain.JobOffer, error) {
	r.createCalls++
	r.nextID++
	clone := *offer
	clone.ID = fmt.Sprintf("offer_%d", r.nextID)
	r.offers = append(r.offers, &clone)
	return &clone, nil
}

func (r *stubOfferRepo) ListAll(_ context.Context, skip, limit int64) ([]*domain.JobOffer, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.offers, nil
}

func (r *stubOfferRepo) ListByOwner(_ context.Context, userID string) ([]*domain.JobOffer, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.JobOffer
	for _, o := range r.offers {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOfferRepo) ExistsByOfferLink(_ context.Context, offerLink string) (bool, error) {
	if r.listErr != nil {
		return false, r.listErr
	}
	for _, o := range r.offers {
		if o.OfferLink == offerLink {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubOfferRepo) Update(_ context.Context, id, userID string, offer *domain.JobOffer) (*domain.JobOffer, error) {
	for i, o := range r.offers {
		if o.ID == id && o.UserID == userID {
			clone := *offer
			clone.ID = id
			clone.UserID = userID
			r.offers[i] = &clone
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubOfferRepo) Delete(_ context.Context, id, userID string) error {
	for i, o := range r.offers {
		if o.ID == id && o.UserID == userID {
			r.offers = append(r.offers[:i], r.offers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubOfferRepo) Count(_ context.Context) (int64, error) {
	if r.listErr != nil {
		return 0, r.listErr
	}
	return int64(len(r.offers)), nil
}

func (r *stubOfferRepo) CountByOwner(_ context.Context, userID string) (int64, error) {
	if r.listErr != nil {
		return 0, r.listErr
	}
	var n int64
	for _, o := range r.offers {
		if o.UserID == userID {
			n++
		}
	}
	return n, nil
}

type stubRecruiterRepo struct {
	recruiters []*domain.Recruiter
	listErr    error
}

func (r *stubRecruiterRepo) Create(_ context.Context, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	clone := *recruiter
	clone.ID = fmt.Sprintf("rec_%d", len(r.recruiters)+1)
	r.recruiters = append(r.recruiters, &clone)
	return &clone, nil
}

func (r *stubRecruiterRepo) ListByOwner(_ context.Context, userID string) ([]*domain.Recruiter, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Recruiter
	for _, rec := range r.recruiters {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubRecruiterRepo) Update(_ context.Context, id, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	return nil, domain.ErrNotFound
}

func (r *stubRecruiterRepo) Delete(_ context.Context, id, userID string) error {
	return domain.ErrNotFound
}

type stubActivityRepo struct {
	activities []*domain.LinkedInActivity
	listErr    error
}

func (r *stubActivityRepo) Create(_ context.Context, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	clone := *activity
	clone.ID = fmt.Sprintf("act_%d", len(r.activities)+1)
	r.activities = append(r.activities, &clone)
	return &clone, nil
}

func (r *stubActivityRepo) ListByOwner(_ context.Context, userID string) ([]*domain.LinkedInActivity, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.LinkedInActivity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) Update(_ context.Context, id, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	return nil, domain.ErrNotFound
}

func (r *stubActivityRepo) Delete(_ context.Context, id, userID string) error {
	return domain.ErrNotFound
}

type stubApplicationRepo struct {
	applications []*domain.Application
	listErr      error
}

func (r *stubApplicationRepo) Create(_ context.Context, application *domain.Application) (*domain.Application, error) {
	clone := *application
	clone.ID = fmt.Sprintf("app_%d", len(r.applications)+1)
	r.applications = append(r.applications, &clone)
	return &clone, nil
}

func (r *stubApplicationRepo) ListByOwner(_ context.Context, userID string) ([]*domain.Application, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListAll(_ context.Context) ([]*domain.Application, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.applications, nil
}

func (r *stubApplicationRepo) Update(_ context.Context, id, userID string, application *domain.Application) (*domain.Application, error) {
	return nil, domain.ErrNotFound
}

func (r *stubApplicationRepo) Delete(_ context.Context, id, userID string) error {
	return domain.ErrNotFound
}

func (r *stubApplicationRepo) CountByOwner(_ context.Context, userID string) (int64, error) {
	if r.listErr != nil {
		return 0, r.listErr
	}
	var n int64
	for _, a := range r.applications {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}
