package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/domain/service"
	"snapgram/internal/usecase"

	"go.uber.org/fx"
)

type saveService struct {
	documents gateway.DocumentGateway
	ids       service.IDGenerator
	logger    *slog.Logger
}

// SaveServiceParams holds dependencies for SaveService, injected by Fx.
type SaveServiceParams struct {
	fx.In

	Documents gateway.DocumentGateway
	IDs       service.IDGenerator
	Logger    *slog.Logger
}

// NewSaveService is the constructor for saveService.
func NewSaveService(params SaveServiceParams) usecase.SaveUsecase {
	return &saveService{
		documents: params.Documents,
		ids:       params.IDs,
		logger:    params.Logger,
	}
}

func (srv *saveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SavePost creates a saved record linking userID to postID.
func (srv *saveService) SavePost(ctx context.Context, userID, postID string) (*entity.SavedRecord, error) {
	doc, err := gateway.NewSaveDocument(userID, postID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithCause(err)
	}

	created, err := srv.documents.CreateDocument(ctx, gateway.CollectionSaves, srv.ids.NewID(), doc)
	if err != nil {
		srv.log(ctx).Warn("Save failed",
			slog.String("user_id", userID),
			slog.String("post_id", postID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPersist.WithCause(err)
	}

	return &entity.SavedRecord{
		ID:        created.ID,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: created.CreatedAt,
	}, nil
}

// DeleteSavedPost deletes a saved record by its id.
func (srv *saveService) DeleteSavedPost(ctx context.Context, savedRecordID string) error {
	if savedRecordID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("saved record id is required")
	}

	if err := srv.documents.DeleteDocument(ctx, gateway.CollectionSaves, savedRecordID); err != nil {
		return writeFailure(err)
	}

	return nil
}

// ToggleSave saves when existingRecordID is empty and unsaves otherwise.
func (srv *saveService) ToggleSave(ctx context.Context, userID, postID, existingRecordID string) (*usecase.ToggleSaveOutput, error) {
	if existingRecordID != "" {
		if err := srv.DeleteSavedPost(ctx, existingRecordID); err != nil {
			return nil, err
		}

		return &usecase.ToggleSaveOutput{Saved: false}, nil
	}

	record, err := srv.SavePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	return &usecase.ToggleSaveOutput{Saved: true, Record: record}, nil
}

// ListSaves lists userID's saved records, newest first.
func (srv *saveService) ListSaves(ctx context.Context, userID string) ([]*entity.SavedRecord, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	list, err := srv.documents.ListDocuments(ctx, gateway.CollectionSaves, gateway.Query{
		Filters: []gateway.Filter{gateway.Equal(gateway.AttrUser, userID)},
		Orders:  []gateway.Order{gateway.OrderDesc(gateway.AttrCreatedAt)},
	})
	if err != nil {
		return nil, remoteFailure(err)
	}

	records, err := gateway.DecodeAll(list, gateway.DecodeSave)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return records, nil
}
