package repositories

import (
	"errors"

	"nexo/internal/models"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDealNotFound      = errors.New("deal not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// MemberRepository defines member-related database operations.
type MemberRepository interface {
	// Create creates a new member. Returns ErrEmailTaken on a duplicate email.
	Create(member *models.Member) error

	// GetByID retrieves a member by their ID
	GetByID(id uint) (*models.Member, error)

	// GetByEmail retrieves a member by their email address
	GetByEmail(email string) (*models.Member, error)

	// GetGuest retrieves the seeded guest account
	GetGuest() (*models.Member, error)

	// Update updates an existing member's record
	Update(member *models.Member) error

	// Delete removes a member from the database
	Delete(id uint) error

	// List retrieves members with pagination
	List(offset, limit int) ([]*models.Member, int64, error)

	// Search finds active members whose name or sector matches the query
	Search(query string) ([]*models.Member, error)

	// ListShowcase retrieves verified public members, optionally
	// filtered by sector
	ListShowcase(sector string) ([]*models.Member, error)

	// ListSectors retrieves the distinct non-empty sectors, sorted
	ListSectors() ([]string, error)

	// IncrementTokenVersion invalidates all outstanding tokens for a member
	IncrementTokenVersion(memberID uint) error

	// ApplyDealTotals overwrites the recorded deal totals. Nil fields are
	// left untouched. The write is absolute, not additive.
	ApplyDealTotals(memberID uint, dealCount *int, dealValue *float64) error

	// AppendDeal appends a deal to the member's embedded deal list
	AppendDeal(memberID uint, deal models.Deal) error

	// MergeDeal merges the given fields into the embedded deal matching
	// dealID. Returns ErrDealNotFound if no such deal exists.
	MergeDeal(memberID uint, dealID string, fields map[string]interface{}) error
}
