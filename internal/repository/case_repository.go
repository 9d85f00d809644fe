package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/database"
	"github.com/casetrack/case-management-api/internal/models"
)

// GormCaseRepository is a GORM implementation of CaseRepository
type GormCaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new CaseRepository
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &GormCaseRepository{db: db}
}

func (r *GormCaseRepository) Create(ctx context.Context, kase *models.Case) error {
	return r.db.WithContext(ctx).Create(kase).Error
}

func (r *GormCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var kase models.Case
	err := r.db.WithContext(ctx).
		Scopes(database.NotDeleted).
		First(&kase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kase, nil
}

// Search applies the criteria as a composed predicate over live rows and
// returns one page plus the total match count.
func (r *GormCaseRepository) Search(ctx context.Context, criteria CaseCriteria) ([]models.Case, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Scopes(database.NotDeleted)

	if criteria.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", contains(criteria.Title))
	}
	if criteria.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", contains(criteria.Description))
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
	}
	if criteria.DueFrom != nil {
		query = query.Where("due >= ?", *criteria.DueFrom)
	}
	if criteria.DueTo != nil {
		query = query.Where("due <= ?", *criteria.DueTo)
	}
	if criteria.CreatedBy != nil {
		query = query.Where("created_by = ?", *criteria.CreatedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []models.Case
	err := query.
		Order(criteria.orderClause()).
		Scopes(database.Paginate(criteria.Page, criteria.Limit)).
		Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

func (r *GormCaseRepository) Update(ctx context.Context, kase *models.Case) error {
	return r.db.WithContext(ctx).Save(kase).Error
}

// ExistsByIDAndOwner deliberately ignores the soft-delete flag: ownership of
// a deleted case still belongs to its creator, and the subsequent read is
// what reports not-found.
func (r *GormCaseRepository) ExistsByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ? AND created_by = ?", id, owner).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCaseRepository) ExistsByTitleAndOwner(ctx context.Context, title string, owner, exclude uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Scopes(database.NotDeleted).
		Where("LOWER(title) = ? AND created_by = ?", strings.ToLower(title), owner)

	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
