package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

// In-memory repositories back tests and DSN-less local runs. Each keeps its
// rows in a map plus an insertion-order slice so that "newest first" listing
// is stable even when timestamps collide.

type InMemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
	emails   map[string]uuid.UUID
	order    []uuid.UUID

	appointments *InMemoryAppointmentRepository
}

func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		accounts: make(map[uuid.UUID]*domain.Account),
		emails:   make(map[string]uuid.UUID),
	}
}

// AttachAppointments wires the appointment store so account deletion can
// cascade, mirroring the foreign-key constraint of the postgres schema.
func (r *InMemoryAccountRepository) AttachAppointments(appointments *InMemoryAppointmentRepository) {
	r.appointments = appointments
}

func (r *InMemoryAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[account.Email]; ok {
		return ErrEmailTaken
	}

	cp := *account
	r.accounts[account.ID] = &cp
	r.emails[account.Email] = account.ID
	r.order = append(r.order, account.ID)
	return nil
}

func (r *InMemoryAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

func (r *InMemoryAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *r.accounts[id]
	return &cp, nil
}

func (r *InMemoryAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Account, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if account, ok := r.accounts[r.order[i]]; ok {
			cp := *account
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *InMemoryAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.accounts[account.ID]
	if !ok {
		return ErrAccountNotFound
	}
	if id, taken := r.emails[account.Email]; taken && id != account.ID {
		return ErrEmailTaken
	}

	delete(r.emails, current.Email)
	cp := *account
	r.accounts[account.ID] = &cp
	r.emails[account.Email] = account.ID
	return nil
}

func (r *InMemoryAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	account, ok := r.accounts[id]
	if !ok {
		r.mu.Unlock()
		return ErrAccountNotFound
	}
	delete(r.emails, account.Email)
	delete(r.accounts, id)
	r.mu.Unlock()

	if r.appointments != nil {
		r.appointments.deleteByUser(id)
	}
	return nil
}

type InMemoryContactRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]*domain.ContactMessage
	order    []uuid.UUID
}

func NewInMemoryContactRepository() *InMemoryContactRepository {
	return &InMemoryContactRepository{messages: make(map[uuid.UUID]*domain.ContactMessage)}
}

func (r *InMemoryContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *msg
	r.messages[msg.ID] = &cp
	r.order = append(r.order, msg.ID)
	return nil
}

func (r *InMemoryContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, ErrContactNotFound
	}
	cp := *msg
	return &cp, nil
}

func (r *InMemoryContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.ContactMessage, 0, len(r.order))
	for _, id := range r.order {
		if msg, ok := r.messages[id]; ok {
			cp := *msg
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *InMemoryContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return ErrContactNotFound
	}
	delete(r.messages, id)
	return nil
}

type InMemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*domain.Appointment
	order        []uuid.UUID

	accounts AccountRepository
}

func NewInMemoryAppointmentRepository(accounts AccountRepository) *InMemoryAppointmentRepository {
	return &InMemoryAppointmentRepository{
		appointments: make(map[uuid.UUID]*domain.Appointment),
		accounts:     accounts,
	}
}

func (r *InMemoryAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *appt
	cp.User = nil
	r.appointments[appt.ID] = &cp
	r.order = append(r.order, appt.ID)
	return nil
}

func (r *InMemoryAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	appt, ok := r.appointments[id]
	if !ok {
		r.mu.RUnlock()
		return nil, ErrAppointmentNotFound
	}
	cp := *appt
	r.mu.RUnlock()

	r.attachUser(ctx, &cp)
	return &cp, nil
}

func (r *InMemoryAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]*domain.Appointment, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if appt, ok := r.appointments[r.order[i]]; ok {
			cp := *appt
			result = append(result, &cp)
		}
	}
	r.mu.RUnlock()

	for _, appt := range result {
		r.attachUser(ctx, appt)
	}
	return result, nil
}

func (r *InMemoryAppointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[appt.ID]; !ok {
		return ErrAppointmentNotFound
	}
	cp := *appt
	cp.User = nil
	r.appointments[appt.ID] = &cp
	return nil
}

func (r *InMemoryAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *InMemoryAppointmentRepository) attachUser(ctx context.Context, appt *domain.Appointment) {
	if appt.UserID == nil || r.accounts == nil {
		return
	}
	if account, err := r.accounts.GetByID(ctx, *appt.UserID); err == nil {
		appt.User = account
	}
}

func (r *InMemoryAppointmentRepository) deleteByUser(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, appt := range r.appointments {
		if appt.UserID != nil && *appt.UserID == userID {
			delete(r.appointments, id)
		}
	}
}

type InMemoryVideoRepository struct {
	mu     sync.RWMutex
	videos map[uuid.UUID]*domain.Video
	order  []uuid.UUID
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{videos: make(map[uuid.UUID]*domain.Video)}
}

func (r *InMemoryVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *video
	r.videos[video.ID] = &cp
	r.order = append(r.order, video.ID)
	return nil
}

func (r *InMemoryVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, ErrVideoNotFound
	}
	cp := *video
	return &cp, nil
}

func (r *InMemoryVideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	return r.listMatching(ctx, func(*domain.Video) bool { return true })
}

func (r *InMemoryVideoRepository) ListByType(ctx context.Context, videoType string) ([]*domain.Video, error) {
	return r.listMatching(ctx, func(v *domain.Video) bool { return v.Type == videoType })
}

func (r *InMemoryVideoRepository) Search(ctx context.Context, query string) ([]*domain.Video, error) {
	q := strings.ToLower(query)
	return r.listMatching(ctx, func(v *domain.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q)
	})
}

func (r *InMemoryVideoRepository) listMatching(ctx context.Context, match func(*domain.Video) bool) ([]*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Video, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if video, ok := r.videos[r.order[i]]; ok && match(video) {
			cp := *video
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *InMemoryVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[video.ID]; !ok {
		return ErrVideoNotFound
	}
	cp := *video
	r.videos[video.ID] = &cp
	return nil
}

func (r *InMemoryVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[id]; !ok {
		return ErrVideoNotFound
	}
	delete(r.videos, id)
	return nil
}

type InMemorySiteContentRepository struct {
	mu       sync.RWMutex
	contents map[uuid.UUID]*domain.SiteContent
	order    []uuid.UUID
}

func NewInMemorySiteContentRepository() *InMemorySiteContentRepository {
	return &InMemorySiteContentRepository{contents: make(map[uuid.UUID]*domain.SiteContent)}
}

func (r *InMemorySiteContentRepository) Create(ctx context.Context, content *domain.SiteContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *content
	r.contents[content.ID] = &cp
	r.order = append(r.order, content.ID)
	return nil
}

func (r *InMemorySiteContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	content, ok := r.contents[id]
	if !ok {
		return nil, ErrContentNotFound
	}
	cp := *content
	return &cp, nil
}

func (r *InMemorySiteContentRepository) List(ctx context.Context) ([]*domain.SiteContent, error) {
	return r.listMatching(ctx, func(*domain.SiteContent) bool { return true })
}

func (r *InMemorySiteContentRepository) ListPublished(ctx context.Context) ([]*domain.SiteContent, error) {
	return r.listMatching(ctx, func(c *domain.SiteContent) bool { return c.Published })
}

func (r *InMemorySiteContentRepository) listMatching(ctx context.Context, match func(*domain.SiteContent) bool) ([]*domain.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.SiteContent, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if content, ok := r.contents[r.order[i]]; ok && match(content) {
			cp := *content
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *InMemorySiteContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contents[id]; !ok {
		return ErrContentNotFound
	}
	delete(r.contents, id)
	return nil
}
