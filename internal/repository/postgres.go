package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository/model"
	"gorm.io/gorm"
)

type PostgresAccountRepository struct {
	db *gorm.DB
}

func NewPostgresAccountRepository(db *gorm.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account == nil {
		return errors.New("account is nil")
	}

	if err := r.db.WithContext(ctx).Create(toModelAccount(account)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var account model.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return toDomainAccount(&account), nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var account model.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return toDomainAccount(&account), nil
}

func (r *PostgresAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var accounts []model.Account
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Account, 0, len(accounts))
	for i := range accounts {
		result = append(result, toDomainAccount(&accounts[i]))
	}
	return result, nil
}

func (r *PostgresAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account == nil {
		return errors.New("account is nil")
	}

	accountModel := toModelAccount(account)

	updateData := map[string]any{
		"name":          accountModel.Name,
		"email":         accountModel.Email,
		"password_hash": accountModel.PasswordHash,
		"role":          accountModel.Role,
		"updated_at":    accountModel.UpdatedAt,
	}

	res := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", accountModel.ID).Updates(updateData)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *PostgresAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Account{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

type PostgresContactRepository struct {
	db *gorm.DB
}

func NewPostgresContactRepository(db *gorm.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg == nil {
		return errors.New("contact message is nil")
	}

	return r.db.WithContext(ctx).Create(toModelContact(msg)).Error
}

func (r *PostgresContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var msg model.Contact
	err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	return toDomainContact(&msg), nil
}

func (r *PostgresContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var msgs []model.Contact
	if err := r.db.WithContext(ctx).Find(&msgs).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.ContactMessage, 0, len(msgs))
	for i := range msgs {
		result = append(result, toDomainContact(&msgs[i]))
	}
	return result, nil
}

func (r *PostgresContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

type PostgresAppointmentRepository struct {
	db *gorm.DB
}

func NewPostgresAppointmentRepository(db *gorm.DB) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{db: db}
}

func (r *PostgresAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if appt == nil {
		return errors.New("appointment is nil")
	}

	return r.db.WithContext(ctx).Create(toModelAppointment(appt)).Error
}

func (r *PostgresAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var appt model.Appointment
	err := r.db.WithContext(ctx).Preload("User").First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	return toDomainAppointment(&appt), nil
}

func (r *PostgresAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var appts []model.Appointment
	err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&appts).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(appts))
	for i := range appts {
		result = append(result, toDomainAppointment(&appts[i]))
	}
	return result, nil
}

func (r *PostgresAppointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if appt == nil {
		return errors.New("appointment is nil")
	}

	apptModel := toModelAppointment(appt)

	updateData := map[string]any{
		"name":                apptModel.Name,
		"email":               apptModel.Email,
		"phone":               apptModel.Phone,
		"appointment_time":    apptModel.AppointmentTime,
		"collaboration_topic": apptModel.CollaborationTopic,
		"updated_at":          apptModel.UpdatedAt,
	}

	if apptModel.UserID == nil {
		updateData["user_id"] = gorm.Expr("NULL")
	} else {
		updateData["user_id"] = apptModel.UserID
	}

	res := r.db.WithContext(ctx).Model(&model.Appointment{}).Where("id = ?", apptModel.ID).Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

type PostgresVideoRepository struct {
	db *gorm.DB
}

func NewPostgresVideoRepository(db *gorm.DB) *PostgresVideoRepository {
	return &PostgresVideoRepository{db: db}
}

func (r *PostgresVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if video == nil {
		return errors.New("video is nil")
	}

	return r.db.WithContext(ctx).Create(toModelVideo(video)).Error
}

func (r *PostgresVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var video model.Video
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	return toDomainVideo(&video), nil
}

func (r *PostgresVideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	return r.listWhere(ctx, r.db.WithContext(ctx))
}

func (r *PostgresVideoRepository) ListByType(ctx context.Context, videoType string) ([]*domain.Video, error) {
	return r.listWhere(ctx, r.db.WithContext(ctx).Where("type = ?", videoType))
}

func (r *PostgresVideoRepository) Search(ctx context.Context, query string) ([]*domain.Video, error) {
	pattern := "%" + query + "%"
	return r.listWhere(ctx, r.db.WithContext(ctx).Where("title ILIKE ? OR description ILIKE ?", pattern, pattern))
}

func (r *PostgresVideoRepository) listWhere(ctx context.Context, tx *gorm.DB) ([]*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var videos []model.Video
	if err := tx.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Video, 0, len(videos))
	for i := range videos {
		result = append(result, toDomainVideo(&videos[i]))
	}
	return result, nil
}

func (r *PostgresVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if video == nil {
		return errors.New("video is nil")
	}

	videoModel := toModelVideo(video)

	res := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoModel.ID).Updates(map[string]any{
		"title":       videoModel.Title,
		"url":         videoModel.URL,
		"type":        videoModel.Type,
		"description": videoModel.Description,
		"updated_at":  videoModel.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

func (r *PostgresVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Video{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

type PostgresSiteContentRepository struct {
	db *gorm.DB
}

func NewPostgresSiteContentRepository(db *gorm.DB) *PostgresSiteContentRepository {
	return &PostgresSiteContentRepository{db: db}
}

func (r *PostgresSiteContentRepository) Create(ctx context.Context, content *domain.SiteContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if content == nil {
		return errors.New("content is nil")
	}

	return r.db.WithContext(ctx).Create(toModelSiteContent(content)).Error
}

func (r *PostgresSiteContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var content model.SiteContent
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	return toDomainSiteContent(&content), nil
}

func (r *PostgresSiteContentRepository) List(ctx context.Context) ([]*domain.SiteContent, error) {
	return r.listWhere(ctx, r.db.WithContext(ctx))
}

func (r *PostgresSiteContentRepository) ListPublished(ctx context.Context) ([]*domain.SiteContent, error) {
	return r.listWhere(ctx, r.db.WithContext(ctx).Where("published = ?", true))
}

func (r *PostgresSiteContentRepository) listWhere(ctx context.Context, tx *gorm.DB) ([]*domain.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var contents []model.SiteContent
	if err := tx.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.SiteContent, 0, len(contents))
	for i := range contents {
		result = append(result, toDomainSiteContent(&contents[i]))
	}
	return result, nil
}

func (r *PostgresSiteContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.SiteContent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func toModelAccount(a *domain.Account) *model.Account {
	return &model.Account{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toDomainAccount(a *model.Account) *domain.Account {
	return &domain.Account{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toModelContact(m *domain.ContactMessage) *model.Contact {
	return &model.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainContact(m *model.Contact) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toModelAppointment(a *domain.Appointment) *model.Appointment {
	return &model.Appointment{
		ID:                 a.ID,
		UserID:             a.UserID,
		Name:               a.Name,
		Email:              a.Email,
		Phone:              a.Phone,
		AppointmentTime:    a.AppointmentTime,
		CollaborationTopic: a.CollaborationTopic,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toDomainAppointment(a *model.Appointment) *domain.Appointment {
	appt := &domain.Appointment{
		ID:                 a.ID,
		UserID:             a.UserID,
		Name:               a.Name,
		Email:              a.Email,
		Phone:              a.Phone,
		AppointmentTime:    a.AppointmentTime,
		CollaborationTopic: a.CollaborationTopic,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
	if a.User != nil {
		appt.User = toDomainAccount(a.User)
	}
	return appt
}

func toModelVideo(v *domain.Video) *model.Video {
	return &model.Video{
		ID:          v.ID,
		Title:       v.Title,
		URL:         v.URL,
		Type:        v.Type,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toDomainVideo(v *model.Video) *domain.Video {
	return &domain.Video{
		ID:          v.ID,
		Title:       v.Title,
		URL:         v.URL,
		Type:        v.Type,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toModelSiteContent(c *domain.SiteContent) *model.SiteContent {
	return &model.SiteContent{
		ID:        c.ID,
		Section:   c.Section,
		Title:     c.Title,
		Body:      c.Body,
		ImageURL:  c.ImageURL,
		Published: c.Published,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toDomainSiteContent(c *model.SiteContent) *domain.SiteContent {
	return &domain.SiteContent{
		ID:        c.ID,
		Section:   c.Section,
		Title:     c.Title,
		Body:      c.Body,
		ImageURL:  c.ImageURL,
		Published: c.Published,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
