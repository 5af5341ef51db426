package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eslsoft/courseboxd/internal/core"
)

// maxSlugAttempts bounds both candidate probing and write-conflict retries.
const maxSlugAttempts = 50

// ensureUniqueSlug returns the first free candidate derived from text within
// kind's namespace. A row whose id equals excludeID does not count as taken.
func ensureUniqueSlug(ctx context.Context, tx core.CourseTx, text string, kind core.SlugKind, excludeID uuid.UUID) (string, error) {
	base := core.SlugifyWithFallback(text)
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate := core.SlugCandidate(base, attempt)
		taken, err := tx.SlugExists(ctx, kind, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s slug %q", core.ErrSlugExhausted, kind, base)
}
