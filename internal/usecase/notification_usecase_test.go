package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendora/internal/domain/entity"
	"vendora/pkg/errors"
)

const (
	primaryID = "64f1a2b3c4d5e6f708192a3b"
	mirrorID  = "Xk9QmZhTAbCdEfGh1234"
)

func newNotificationTestMocks() (*MockNotificationRepository, *MockNotificationMirror, *MockUserRepository) {
	return new(MockNotificationRepository), new(MockNotificationMirror), new(MockUserRepository)
}

func TestDispatch_CrossLinksPrimaryAndMirror(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*entity.Notification)
			n.ID = primaryID
			assert.False(t, n.Seen)
		})

	mirror.On("Add", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		// The primary write happens first, so the mirror sees the primary id.
		return n.ID == primaryID
	})).Return(mirrorID, nil)

	notificationRepo.On("SetMirrorID", mock.Anything, primaryID, mirrorID).Return(nil)

	notification, err := uc.Dispatch(ctx, DispatchInput{
		Title:         "New Order Received",
		Message:       "You sold something.",
		Type:          entity.NotificationTypeOrders,
		RecipientID:   "seller1",
		RecipientRole: "seller",
	})

	assert.NoError(t, err)
	assert.Equal(t, primaryID, notification.ID)
	assert.Equal(t, mirrorID, notification.MirrorID)
	notificationRepo.AssertExpectations(t)
	mirror.AssertExpectations(t)
}

func TestDispatch_MirrorFailureLeavesPrimaryUnlinked(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	notificationRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Notification).ID = primaryID
	})
	mirror.On("Add", mock.Anything, mock.Anything).Return("", errors.Internal("mirror store unreachable", nil))

	notification, err := uc.Dispatch(ctx, DispatchInput{
		Title:       "New Order Received",
		RecipientID: "seller1",
	})

	assert.Nil(t, notification)
	assert.Error(t, err)
	notificationRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	notificationRepo.AssertNotCalled(t, "SetMirrorID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_PrimaryFailureSkipsMirror(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	notificationRepo.On("Create", mock.Anything, mock.Anything).Return(errors.Internal("write failed", nil))

	notification, err := uc.Dispatch(ctx, DispatchInput{Title: "x", RecipientID: "seller1"})

	assert.Nil(t, notification)
	assert.Error(t, err)
	mirror.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestList_AdminSeesRoleFeedOthersSeeOwn(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	userRepo.On("GetByID", mock.Anything, "admin1").Return(&entity.User{ID: "admin1", Role: "admin"}, nil)
	userRepo.On("GetByID", mock.Anything, "seller1").Return(&entity.User{ID: "seller1", Role: "seller"}, nil)

	adminFeed := []*entity.Notification{{ID: primaryID, RecipientRole: "admin"}}
	ownFeed := []*entity.Notification{{ID: primaryID, RecipientID: "seller1"}}
	notificationRepo.On("ListByRole", mock.Anything, "admin").Return(adminFeed, nil)
	notificationRepo.On("ListByRecipient", mock.Anything, "seller1").Return(ownFeed, nil)

	got, err := uc.List(ctx, "admin1")
	assert.NoError(t, err)
	assert.Equal(t, adminFeed, got)

	got, err = uc.List(ctx, "seller1")
	assert.NoError(t, err)
	assert.Equal(t, ownFeed, got)
}

func TestMarkRead_ByMirrorIDFallsBackToCrossReference(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: mirrorID, RecipientID: "seller1"}
	notificationRepo.On("GetByMirrorID", mock.Anything, mirrorID).Return(stored, nil)
	notificationRepo.On("MarkSeen", mock.Anything, primaryID).Return(nil)
	mirror.On("MarkSeen", mock.Anything, mirrorID).Return(nil)

	notification, err := uc.MarkRead(ctx, "seller1", mirrorID)

	assert.NoError(t, err)
	assert.True(t, notification.Seen)
	notificationRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	notificationRepo.AssertExpectations(t)
	mirror.AssertExpectations(t)
}

func TestMarkRead_PrimaryIDMissesThenMirrorLookup(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	// 24 hex chars can also be a mirror id; a primary miss retries as one.
	hexish := "aaaaaaaaaaaaaaaaaaaaaaaa"
	stored := &entity.Notification{ID: primaryID, MirrorID: hexish, RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, hexish).Return(nil, errors.NotFound("Notification", nil))
	notificationRepo.On("GetByMirrorID", mock.Anything, hexish).Return(stored, nil)
	notificationRepo.On("MarkSeen", mock.Anything, primaryID).Return(nil)
	mirror.On("MarkSeen", mock.Anything, hexish).Return(nil)

	notification, err := uc.MarkRead(ctx, "seller1", hexish)

	assert.NoError(t, err)
	assert.Equal(t, primaryID, notification.ID)
}

func TestMarkRead_UnmirroredRecordUpdatesPrimaryOnly(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: "", RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	notificationRepo.On("MarkSeen", mock.Anything, primaryID).Return(nil)

	notification, err := uc.MarkRead(ctx, "seller1", primaryID)

	assert.NoError(t, err)
	assert.True(t, notification.Seen)
	mirror.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestMarkRead_NonRecipientNonAdminForbidden(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: mirrorID, RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	userRepo.On("GetByID", mock.Anything, "seller2").Return(&entity.User{ID: "seller2", Role: "seller"}, nil)

	notification, err := uc.MarkRead(ctx, "seller2", primaryID)

	assert.Nil(t, notification)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	notificationRepo.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
	mirror.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestMarkRead_AdminMayActOnAnyRecipient(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: mirrorID, RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	userRepo.On("GetByID", mock.Anything, "admin1").Return(&entity.User{ID: "admin1", Role: "admin"}, nil)
	notificationRepo.On("MarkSeen", mock.Anything, primaryID).Return(nil)
	mirror.On("MarkSeen", mock.Anything, mirrorID).Return(nil)

	_, err := uc.MarkRead(ctx, "admin1", primaryID)

	assert.NoError(t, err)
}

func TestMarkAllRead_BatchesMirrorUpdates(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	unseen := []*entity.Notification{
		{ID: "64f1a2b3c4d5e6f708192a01", MirrorID: "MirrorDoc0000000000a"},
		{ID: "64f1a2b3c4d5e6f708192a02", MirrorID: ""},
		{ID: "64f1a2b3c4d5e6f708192a03", MirrorID: "MirrorDoc0000000000b"},
	}
	notificationRepo.On("ListUnseenByRecipient", mock.Anything, "seller1").Return(unseen, nil)
	notificationRepo.On("MarkAllSeen", mock.Anything, "seller1").Return(nil)
	mirror.On("MarkAllSeen", mock.Anything, []string{"MirrorDoc0000000000a", "MirrorDoc0000000000b"}).Return(nil)

	err := uc.MarkAllRead(ctx, "seller1")

	assert.NoError(t, err)
	mirror.AssertExpectations(t)
}

func TestMarkAllRead_NothingUnseenIsNoOp(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	notificationRepo.On("ListUnseenByRecipient", mock.Anything, "seller1").Return([]*entity.Notification{}, nil)
	notificationRepo.On("MarkAllSeen", mock.Anything, "seller1").Return(nil)
	mirror.On("MarkAllSeen", mock.Anything, mock.Anything).Return(nil)

	err := uc.MarkAllRead(ctx, "seller1")

	assert.NoError(t, err)
}

func TestDelete_RemovesMirrorThenPrimary(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: mirrorID, RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	mirror.On("Delete", mock.Anything, mirrorID).Return(nil)
	notificationRepo.On("Delete", mock.Anything, primaryID).Return(nil)

	err := uc.Delete(ctx, "seller1", primaryID)

	assert.NoError(t, err)
	mirror.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestDelete_PrimaryOnlyRecordDeletesCleanly(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: "", RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	notificationRepo.On("Delete", mock.Anything, primaryID).Return(nil)

	err := uc.Delete(ctx, "seller1", primaryID)

	assert.NoError(t, err)
	mirror.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_MirrorFailureKeepsPrimary(t *testing.T) {
	notificationRepo, mirror, userRepo := newNotificationTestMocks()
	uc := NewNotificationUseCase(notificationRepo, mirror, userRepo)
	ctx := context.Background()

	stored := &entity.Notification{ID: primaryID, MirrorID: mirrorID, RecipientID: "seller1"}
	notificationRepo.On("GetByID", mock.Anything, primaryID).Return(stored, nil)
	mirror.On("Delete", mock.Anything, mirrorID).Return(errors.Internal("mirror store unreachable", nil))

	err := uc.Delete(ctx, "seller1", primaryID)

	assert.Error(t, err)
	notificationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
