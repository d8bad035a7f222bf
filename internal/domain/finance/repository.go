package finance

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// CreditsApplicationRepository defines persistence operations for credit
// applications
type CreditsApplicationRepository interface {
	shared.CompanyRepository[CreditsApplication]
}
