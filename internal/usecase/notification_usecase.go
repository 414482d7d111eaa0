package usecase

import (
	"context"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	mirrorRepo       repository.NotificationMirrorRepository
	userRepo         repository.UserRepository
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	mirrorRepo repository.NotificationMirrorRepository,
	userRepo repository.UserRepository,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		mirrorRepo:       mirrorRepo,
		userRepo:         userRepo,
	}
}

type DispatchInput struct {
	Title         string
	Message       string
	Type          string
	RecipientID   string
	RecipientRole string
	ProductID     string
	SenderID      string
	Meta          map[string]interface{}
}

// Dispatch writes the notification to the primary store, mirrors it to the
// secondary store, and links the two ids. The primary write is durable
// before the mirror is attempted; a mirror or link failure leaves the
// primary record in place and is surfaced to the caller.
func (uc *NotificationUseCase) Dispatch(ctx context.Context, input DispatchInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		Title:         input.Title,
		Message:       input.Message,
		Type:          input.Type,
		ProductID:     input.ProductID,
		SenderID:      input.SenderID,
		RecipientID:   input.RecipientID,
		RecipientRole: input.RecipientRole,
		Seen:          false,
		Meta:          input.Meta,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	mirrorID, err := uc.mirrorRepo.Add(ctx, notification)
	if err != nil {
		return nil, err
	}

	if err := uc.notificationRepo.SetMirrorID(ctx, notification.ID, mirrorID); err != nil {
		return nil, err
	}

	notification.MirrorID = mirrorID
	return notification, nil
}

// List returns notification history for a user: admins see everything
// addressed to the admin role, everyone else only their own, newest first.
func (uc *NotificationUseCase) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == "admin" {
		return uc.notificationRepo.ListByRole(ctx, "admin")
	}
	return uc.notificationRepo.ListByRecipient(ctx, userID)
}

// resolve looks a notification up by either store's identifier: primary id
// first when the raw id parses as one, mirror id as fallback.
func (uc *NotificationUseCase) resolve(ctx context.Context, rawID string) (*entity.Notification, error) {
	ref := entity.ParseNotificationRef(rawID)

	if ref.Kind == entity.RefPrimary {
		notification, err := uc.notificationRepo.GetByID(ctx, ref.ID)
		if err == nil {
			return notification, nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	return uc.notificationRepo.GetByMirrorID(ctx, ref.ID)
}

func (uc *NotificationUseCase) authorize(ctx context.Context, userID string, notification *entity.Notification) error {
	if notification.RecipientID == userID {
		return nil
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != "admin" {
		return errors.Forbidden("You don't have permission to modify this notification", nil)
	}

	return nil
}

// MarkRead sets seen=true in both stores. A record that was never mirrored
// is updated in the primary store only; that is not an error.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, rawID string) (*entity.Notification, error) {
	notification, err := uc.resolve(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, userID, notification); err != nil {
		return nil, err
	}

	if err := uc.notificationRepo.MarkSeen(ctx, notification.ID); err != nil {
		return nil, err
	}

	if notification.MirrorID != "" {
		if err := uc.mirrorRepo.MarkSeen(ctx, notification.MirrorID); err != nil {
			return nil, err
		}
	}

	notification.Seen = true
	return notification, nil
}

// MarkAllRead flips every unseen notification for the user in the primary
// store, then mirrors the updates as one batched write. Calling it again
// finds nothing unseen and is a no-op.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	unseen, err := uc.notificationRepo.ListUnseenByRecipient(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.notificationRepo.MarkAllSeen(ctx, userID); err != nil {
		return err
	}

	var mirrorIDs []string
	for _, n := range unseen {
		if n.MirrorID != "" {
			mirrorIDs = append(mirrorIDs, n.MirrorID)
		}
	}

	return uc.mirrorRepo.MarkAllSeen(ctx, mirrorIDs)
}

// Delete removes the mirror first (when one exists), then the primary
// record. A record that only exists in the primary store deletes cleanly.
func (uc *NotificationUseCase) Delete(ctx context.Context, userID, rawID string) error {
	notification, err := uc.resolve(ctx, rawID)
	if err != nil {
		return err
	}

	if err := uc.authorize(ctx, userID, notification); err != nil {
		return err
	}

	if notification.MirrorID != "" {
		if err := uc.mirrorRepo.Delete(ctx, notification.MirrorID); err != nil {
			return err
		}
	}

	return uc.notificationRepo.Delete(ctx, notification.ID)
}
