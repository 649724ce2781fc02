package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type GuestServiceInterface interface {
	CreateGuest(ctx context.Context, userID, eventID string, request request_models.CreateGuestRequest) (*db_models.Guest, error)
	UpdateGuest(ctx context.Context, userID, guestID string, request request_models.UpdateGuestRequest) (*db_models.Guest, error)
	DeleteGuest(ctx context.Context, userID, guestID string) error
	GetGuest(ctx context.Context, userID, guestID string) (*db_models.Guest, error)
	ListGuests(ctx context.Context, userID, eventID string) ([]db_models.Guest, error)

	CreateTag(ctx context.Context, userID, eventID string, request request_models.LabelRequest) (*db_models.Tag, error)
	CreateGroup(ctx context.Context, userID, eventID string, request request_models.LabelRequest) (*db_models.Group, error)
	ListTags(ctx context.Context, userID, eventID string) ([]db_models.Tag, error)
	ListGroups(ctx context.Context, userID, eventID string) ([]db_models.Group, error)
	DeleteTag(ctx context.Context, userID, eventID, tagID string) error
	DeleteGroup(ctx context.Context, userID, eventID, groupID string) error
}

type GuestService struct {
	guestRepo repositories.GuestRepository
	eventRepo repositories.EventRepository
	planRepo  repositories.IPlanRepository
	labelRepo repositories.LabelRepository
}

func NewGuestService(
	guestRepo repositories.GuestRepository,
	eventRepo repositories.EventRepository,
	planRepo repositories.IPlanRepository,
	labelRepo repositories.LabelRepository) GuestServiceInterface {
	return &GuestService{
		guestRepo: guestRepo,
		eventRepo: eventRepo,
		planRepo:  planRepo,
		labelRepo: labelRepo,
	}
}

func (s *GuestService) ownedEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return nil, utils.ErrRecordNotFound
	}
	return event, nil
}

// checkGuestLimit enforces the effective plan limit across all of the
// user's events. adding is how many rows the caller wants to create.
func (s *GuestService) checkGuestLimit(ctx context.Context, userID string, adding int64) error {
	userPlan, err := s.planRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if userPlan == nil {
		return nil // no plan assigned, nothing to enforce
	}

	limit := userPlan.EffectiveGuestLimit()
	if limit <= 0 {
		return nil
	}

	current, err := s.guestRepo.CountByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if current+adding > int64(limit) {
		return utils.ErrPlanLimitReached
	}
	return nil
}

func (s *GuestService) resolveLabels(ctx context.Context, eventID string, tagIDs, groupIDs []string) ([]db_models.Tag, []db_models.Group, error) {
	tags, err := s.labelRepo.FindTags(ctx, eventID, tagIDs)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	groups, err := s.labelRepo.FindGroups(ctx, eventID, groupIDs)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	return tags, groups, nil
}

func (s *GuestService) CreateGuest(ctx context.Context, userID, eventID string, request request_models.CreateGuestRequest) (*db_models.Guest, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkGuestLimit(ctx, userID, 1); err != nil {
		return nil, err
	}

	status := db_models.RSVPPending
	if request.Status != "" {
		status = db_models.RSVPStatus(request.Status)
	}
	headCount := request.HeadCount
	if headCount <= 0 {
		headCount = 1
	}

	guest := &db_models.Guest{
		EventID:   event.ID,
		Name:      request.Name,
		Phone:     request.Phone,
		Status:    status,
		HeadCount: headCount,
		Wishing:   request.Wishing,
	}

	tags, groups, err := s.resolveLabels(ctx, eventID, request.TagIDs, request.GroupIDs)
	if err != nil {
		return nil, err
	}
	guest.Tags = tags
	guest.Groups = groups

	if err := s.guestRepo.Insert(ctx, guest); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return guest, nil
}

func (s *GuestService) UpdateGuest(ctx context.Context, userID, guestID string, request request_models.UpdateGuestRequest) (*db_models.Guest, error) {

	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, guest.EventID.String()); err != nil {
		return nil, err
	}

	if request.Name != nil {
		guest.Name = *request.Name
	}
	if request.Phone != nil {
		guest.Phone = *request.Phone
	}
	if request.Status != nil {
		guest.Status = db_models.RSVPStatus(*request.Status)
	}
	if request.HeadCount != nil {
		guest.HeadCount = *request.HeadCount
	}
	if request.Wishing != nil {
		guest.Wishing = *request.Wishing
	}
	if request.Invited != nil {
		if *request.Invited {
			now := time.Now()
			guest.InvitedAt = &now
		} else {
			guest.InvitedAt = nil
		}
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// An absent list leaves that association alone; only the lists the
	// caller sent are replaced.
	if request.TagIDs != nil || request.GroupIDs != nil {
		tags, groups := guest.Tags, guest.Groups
		if request.TagIDs != nil {
			found, err := s.labelRepo.FindTags(ctx, guest.EventID.String(), request.TagIDs)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			tags = found
		}
		if request.GroupIDs != nil {
			found, err := s.labelRepo.FindGroups(ctx, guest.EventID.String(), request.GroupIDs)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			groups = found
		}
		if err := s.guestRepo.ReplaceLabels(ctx, guest, tags, groups); err != nil {
			return nil, utils.ErrDatabaseError
		}
		guest.Tags = tags
		guest.Groups = groups
	}

	return guest, nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, userID, guestID string) error {

	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if guest == nil {
		return utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, guest.EventID.String()); err != nil {
		return err
	}

	if err := s.guestRepo.Delete(ctx, guestID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GuestService) GetGuest(ctx context.Context, userID, guestID string) (*db_models.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, guest.EventID.String()); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) ListGuests(ctx context.Context, userID, eventID string) ([]db_models.Guest, error) {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return guests, nil
}

func (s *GuestService) CreateTag(ctx context.Context, userID, eventID string, request request_models.LabelRequest) (*db_models.Tag, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	tag := &db_models.Tag{EventID: event.ID, NameEn: request.NameEn, NameKh: request.NameKh}
	if err := s.labelRepo.InsertTag(ctx, tag); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tag, nil
}

func (s *GuestService) CreateGroup(ctx context.Context, userID, eventID string, request request_models.LabelRequest) (*db_models.Group, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	group := &db_models.Group{EventID: event.ID, NameEn: request.NameEn, NameKh: request.NameKh}
	if err := s.labelRepo.InsertGroup(ctx, group); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return group, nil
}

func (s *GuestService) ListTags(ctx context.Context, userID, eventID string) ([]db_models.Tag, error) {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	tags, err := s.labelRepo.ListTags(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tags, nil
}

func (s *GuestService) ListGroups(ctx context.Context, userID, eventID string) ([]db_models.Group, error) {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	groups, err := s.labelRepo.ListGroups(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return groups, nil
}

func (s *GuestService) DeleteTag(ctx context.Context, userID, eventID, tagID string) error {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := s.labelRepo.DeleteTag(ctx, eventID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GuestService) DeleteGroup(ctx context.Context, userID, eventID, groupID string) error {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := s.labelRepo.DeleteGroup(ctx, eventID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
