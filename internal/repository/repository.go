package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/models"
)

// CaseRepository defines the data access surface for cases. Every read
// excludes soft-deleted rows.
type CaseRepository interface {
	// Create persists a new case. Ownership stamping happens in the
	// persistence hook from the principal carried by ctx.
	Create(ctx context.Context, kase *models.Case) error

	// FindByID finds a live case by id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Case, error)

	// Search retrieves a page of cases matching the criteria plus the total
	// match count.
	Search(ctx context.Context, criteria CaseCriteria) ([]models.Case, int64, error)

	// Update persists changes to an existing case.
	Update(ctx context.Context, kase *models.Case) error

	// ExistsByIDAndOwner reports whether the case with the given id is
	// owned by owner. Existence and ownership are checked in one predicate
	// so a denial never reveals whether the case exists for someone else.
	// Ownership outlives soft-deletion; reads still exclude deleted rows, so
	// acting on an own deleted case reports not-found rather than denial.
	ExistsByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (bool, error)

	// ExistsByTitleAndOwner reports whether owner already has a live case
	// with the given title, case-insensitively. A non-nil exclude id leaves
	// that case out of the check (title-preserving updates).
	ExistsByTitleAndOwner(ctx context.Context, title string, owner, exclude uuid.UUID) (bool, error)
}

// UserRepository defines the data access surface for users.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a live user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername finds a live user by username.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
