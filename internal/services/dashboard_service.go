package services

import (
	"context"
	"time"

	"phka/internal/models/db_models"
	resp "phka/internal/models/response_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

// KHRToUSDRate converts riel amounts into their dollar equivalent for
// the combined total. Per-currency sums stay raw.
const KHRToUSDRate = 1.0 / 4100.0

type DashboardService interface {
	BuildEventDashboard(ctx context.Context, eventID string) (*resp.EventDashboard, error)
	BuildAdminDashboard(ctx context.Context, rng resp.TimeRange) (*resp.AdminDashboard, error)
}

type dashboardService struct {
	eventRepo   repositories.EventRepository
	guestRepo   repositories.GuestRepository
	giftRepo    repositories.GiftRepository
	expenseRepo repositories.ExpenseRepository
	adminRepo   repositories.DashboardRepository
}

func NewDashboardService(
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository,
	giftRepo repositories.GiftRepository,
	expenseRepo repositories.ExpenseRepository,
	adminRepo repositories.DashboardRepository) DashboardService {
	return &dashboardService{
		eventRepo:   eventRepo,
		guestRepo:   guestRepo,
		giftRepo:    giftRepo,
		expenseRepo: expenseRepo,
		adminRepo:   adminRepo,
	}
}

func (s *dashboardService) BuildEventDashboard(ctx context.Context, eventID string) (*resp.EventDashboard, error) {

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrRecordNotFound
	}

	// ---------- Guests ----------
	total, err := s.guestRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	confirmed, err := s.guestRepo.CountByStatus(ctx, eventID, db_models.RSVPConfirmed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pending, err := s.guestRepo.CountByStatus(ctx, eventID, db_models.RSVPPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	rejected, err := s.guestRepo.CountByStatus(ctx, eventID, db_models.RSVPRejected)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	headCount, err := s.guestRepo.SumHeadCount(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	invited, err := s.guestRepo.CountInvited(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// ---------- Gifts ----------
	// Per-currency sums first, conversion only for the combined total.
	sumUSD, err := s.giftRepo.SumByCurrency(ctx, eventID, db_models.CurrencyUSD)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	sumKHR, err := s.giftRepo.SumByCurrency(ctx, eventID, db_models.CurrencyKHR)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	countUSD, err := s.giftRepo.CountByCurrency(ctx, eventID, db_models.CurrencyUSD)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	countKHR, err := s.giftRepo.CountByCurrency(ctx, eventID, db_models.CurrencyKHR)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalGiftIncome := sumUSD + sumKHR*KHRToUSDRate

	// ---------- Expenses ----------
	budget, actual, err := s.expenseRepo.Totals(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.EventDashboard{
		EventID:   event.ID.String(),
		EventName: event.Name,
		Guests: resp.GuestStats{
			Total:     total,
			Confirmed: confirmed,
			Pending:   pending,
			Rejected:  rejected,
			HeadCount: headCount,
			Invited:   invited,
		},
		Gifts: resp.GiftStats{
			TotalIncomeUSD:  sumUSD,
			TotalIncomeKHR:  sumKHR,
			TotalGiftIncome: totalGiftIncome,
			CountUSD:        countUSD,
			CountKHR:        countKHR,
		},
		Expenses: resp.ExpenseStats{
			TotalBudget: budget,
			TotalActual: actual,
		},
		NetAmountUSD: totalGiftIncome - actual,
	}, nil
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildAdminDashboard(ctx context.Context, rng resp.TimeRange) (*resp.AdminDashboard, error) {
	rng = normalizeRange(rng)

	totalUsers, err := s.adminRepo.CountTotalUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUsers, err := s.adminRepo.CountNewUsers(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Growth vs the preceding window of the same length; 0 when the
	// previous period is empty.
	window := rng.End.Sub(rng.Start)
	prevUsers, err := s.adminRepo.CountNewUsers(ctx, rng.Start.Add(-window), rng.Start)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var growthPct float64
	if prevUsers > 0 {
		growthPct = (float64(newUsers-prevUsers) / float64(prevUsers)) * 100.0
	}

	totalEvents, err := s.adminRepo.CountTotalEvents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byStatus, err := s.eventRepo.CountByStatus(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	planRows, err := s.adminRepo.PlanMix(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var totalAssigned float64
	for _, r := range planRows {
		totalAssigned += float64(r.Count)
	}
	var planMix []resp.PlanMixItem
	for _, r := range planRows {
		var pct float64
		if totalAssigned > 0 {
			pct = float64(r.Count) * 100.0 / totalAssigned
		}
		planMix = append(planMix, resp.PlanMixItem{
			PlanCode: r.PlanCode,
			PlanName: r.PlanName,
			Count:    r.Count,
			Percent:  pct,
		})
	}

	return &resp.AdminDashboard{
		Range:         rng,
		TotalUsers:    totalUsers,
		NewUsers:      newUsers,
		UserGrowthPct: growthPct,
		TotalEvents:   totalEvents,
		EventsByState: byStatus,
		PlanMix:       planMix,
	}, nil
}
