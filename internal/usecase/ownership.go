package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/eslsoft/courseboxd/internal/core"
)

func assertCourseOwnership(ctx context.Context, tx core.CourseTx, courseID, userID uuid.UUID) error {
	creatorID, err := tx.CourseCreator(ctx, courseID)
	if err != nil {
		return err
	}
	if creatorID != userID {
		return core.ErrForbidden
	}
	return nil
}

func assertVideoOwnership(ctx context.Context, tx core.CourseTx, videoID, userID uuid.UUID) (*core.VideoOwnership, error) {
	ownership, err := tx.VideoOwnership(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if ownership.CreatorID != userID {
		return nil, core.ErrForbidden
	}
	return ownership, nil
}
