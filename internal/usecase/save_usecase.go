package usecase

import (
	"context"

	"snapgram/internal/domain/entity"
)

// ToggleSaveOutput reports the outcome of a save toggle.
type ToggleSaveOutput struct {
	Saved  bool
	Record *entity.SavedRecord // Set when Saved.
}

// SaveUsecase defines the saved-post operations.
type SaveUsecase interface {
	SavePost(ctx context.Context, userID, postID string) (*entity.SavedRecord, error)
	DeleteSavedPost(ctx context.Context, savedRecordID string) error

	// ToggleSave creates a record when existingRecordID is empty and deletes that
	// record otherwise. It never searches for records, so repeated saves without
	// a delete accumulate duplicates.
	ToggleSave(ctx context.Context, userID, postID, existingRecordID string) (*ToggleSaveOutput, error)

	ListSaves(ctx context.Context, userID string) ([]*entity.SavedRecord, error)
}
