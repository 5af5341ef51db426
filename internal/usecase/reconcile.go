package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

// plannedVideo is one entry of the desired list with its final position.
type plannedVideo struct {
	draft    core.VideoDraft
	position int
	existing bool
}

// videoPlan is the set of changes that turns the stored video list into the
// desired one.
type videoPlan struct {
	remove  []uuid.UUID
	entries []plannedVideo
}

// planVideoSync diffs the course's current video ids against an edit.
// Removed ids are deleted first; with ReplaceVideos every current id missing
// from the desired list is deleted as well.
func planVideoSync(current []uuid.UUID, update core.CourseUpdate) (videoPlan, error) {
	currentSet := lo.SliceToMap(current, func(id uuid.UUID) (uuid.UUID, struct{}) { return id, struct{}{} })
	removedSet := lo.SliceToMap(update.RemovedVideoIDs, func(id uuid.UUID) (uuid.UUID, struct{}) { return id, struct{}{} })

	plan := videoPlan{
		remove:  lo.Uniq(update.RemovedVideoIDs),
		entries: make([]plannedVideo, 0, len(update.Videos)),
	}

	desired := make(map[uuid.UUID]struct{}, len(update.Videos))
	for i, draft := range update.Videos {
		entry := plannedVideo{
			draft:    draft,
			position: lo.FromPtrOr(draft.Position, i+1),
		}
		if draft.ID != uuid.Nil {
			if _, dup := desired[draft.ID]; dup {
				return videoPlan{}, core.NewValidationError(fmt.Sprintf("videos[%d].id", i), "Duplicate video reference")
			}
			desired[draft.ID] = struct{}{}

			_, known := currentSet[draft.ID]
			_, removed := removedSet[draft.ID]
			if !known || removed {
				return videoPlan{}, fmt.Errorf("%w: video %s is not part of this course", core.ErrInvalidVideoReference, draft.ID)
			}
			entry.existing = true
		}
		plan.entries = append(plan.entries, entry)
	}

	if update.ReplaceVideos {
		for _, id := range current {
			_, keep := desired[id]
			_, removed := removedSet[id]
			if !keep && !removed {
				plan.remove = append(plan.remove, id)
			}
		}
	}

	return plan, nil
}
