package memberRepo

import "courtside/models"

// MemberRepository persists member records. The unique email index is
// the idempotency guard for promotion: CreateIfAbsent never errors on a
// duplicate, it reports created == false.
type MemberRepository interface {
	CreateIfAbsent(member *models.Member) (created bool, err error)
	GetByEmail(email string) (*models.Member, error)
	GetByID(id string) (*models.Member, error)
	GetAll() ([]models.Member, error)
	Delete(id string) (*models.Member, error)
	Count() (int64, error)
}
