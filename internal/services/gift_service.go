package services

import (
	"context"

	"github.com/google/uuid"

	"phka/internal/models/db_models"
	"phka/internal/models/request_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type GiftServiceInterface interface {
	CreateGift(ctx context.Context, userID, eventID string, request request_models.CreateGiftRequest) (*db_models.Gift, error)
	DeleteGift(ctx context.Context, userID, giftID string) error
	ListGifts(ctx context.Context, userID, eventID string) ([]db_models.Gift, error)

	CreateExpense(ctx context.Context, userID, eventID string, request request_models.CreateExpenseRequest) (*db_models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, request request_models.CreateExpenseRequest) (*db_models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	ListExpenses(ctx context.Context, userID, eventID string) ([]db_models.Expense, error)
}

type GiftService struct {
	giftRepo    repositories.GiftRepository
	expenseRepo repositories.ExpenseRepository
	eventRepo   repositories.EventRepository
	guestRepo   repositories.GuestRepository
}

func NewGiftService(
	giftRepo repositories.GiftRepository,
	expenseRepo repositories.ExpenseRepository,
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository) GiftServiceInterface {
	return &GiftService{
		giftRepo:    giftRepo,
		expenseRepo: expenseRepo,
		eventRepo:   eventRepo,
		guestRepo:   guestRepo,
	}
}

func (s *GiftService) ownedEvent(ctx context.Context, userID, eventID string) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil || event.UserID.String() != userID {
		return nil, utils.ErrRecordNotFound
	}
	return event, nil
}

func (s *GiftService) CreateGift(ctx context.Context, userID, eventID string, request request_models.CreateGiftRequest) (*db_models.Gift, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	gift := &db_models.Gift{
		EventID:     event.ID,
		Currency:    db_models.CurrencyType(request.Currency),
		Payment:     db_models.PaymentType(request.Payment),
		AmountUSD:   request.AmountUSD,
		AmountKHR:   request.AmountKHR,
		Description: request.Description,
	}

	if request.GuestID != "" {
		guest, err := s.guestRepo.FindByID(ctx, request.GuestID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if guest == nil || guest.EventID != event.ID {
			return nil, utils.ErrRecordNotFound
		}
		gid, err := uuid.Parse(request.GuestID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		gift.GuestID = &gid
	}

	if err := s.giftRepo.Insert(ctx, gift); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return gift, nil
}

func (s *GiftService) DeleteGift(ctx context.Context, userID, giftID string) error {

	gift, err := s.giftRepo.FindByID(ctx, giftID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if gift == nil {
		return utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, gift.EventID.String()); err != nil {
		return err
	}

	if err := s.giftRepo.Delete(ctx, giftID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GiftService) ListGifts(ctx context.Context, userID, eventID string) ([]db_models.Gift, error) {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	gifts, err := s.giftRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return gifts, nil
}

func (s *GiftService) CreateExpense(ctx context.Context, userID, eventID string, request request_models.CreateExpenseRequest) (*db_models.Expense, error) {

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	expense := &db_models.Expense{
		EventID:      event.ID,
		Name:         request.Name,
		BudgetAmount: request.BudgetAmount,
		ActualAmount: request.ActualAmount,
		Note:         request.Note,
	}

	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return expense, nil
}

func (s *GiftService) UpdateExpense(ctx context.Context, userID, expenseID string, request request_models.CreateExpenseRequest) (*db_models.Expense, error) {

	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil {
		return nil, utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, expense.EventID.String()); err != nil {
		return nil, err
	}

	expense.Name = request.Name
	expense.BudgetAmount = request.BudgetAmount
	expense.ActualAmount = request.ActualAmount
	expense.Note = request.Note

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return expense, nil
}

func (s *GiftService) DeleteExpense(ctx context.Context, userID, expenseID string) error {

	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrRecordNotFound
	}
	if _, err := s.ownedEvent(ctx, userID, expense.EventID.String()); err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *GiftService) ListExpenses(ctx context.Context, userID, eventID string) ([]db_models.Expense, error) {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return expenses, nil
}
