package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
)

// UpdateValidator validates a proposed partial update before it is applied.
type UpdateValidator struct {
	repo repository.RepositoryInterface
}

func NewUpdateValidator(repo repository.RepositoryInterface) *UpdateValidator {
	return &UpdateValidator{repo: repo}
}

// ValidateForUpdate checks the proposed change against the pre-update
// stored state. Rules run in order and the first failing rule wins:
//  1. A supplied email that differs from the current one must not belong
//     to any other author -> ErrDuplicateEmail.
//  2. At least one of first/last name must be supplied and non-blank on
//     every update, even when only email/bio/genre change -> ErrMissingName.
//
// The only side effect is the existence query in rule 1.
func (v *UpdateValidator) ValidateForUpdate(ctx context.Context, targetID uuid.UUID, proposed *model.UpdateAuthorRequest, current *model.Author) error {
	if proposed.Email != nil && *proposed.Email != current.Email {
		taken, err := v.repo.ExistsByEmailExcludingID(ctx, *proposed.Email, targetID)
		if err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return model.ErrDuplicateEmail
		}
	}

	if isBlank(proposed.FirstName) && isBlank(proposed.LastName) {
		return model.ErrMissingName
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
