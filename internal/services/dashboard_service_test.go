package services

import (
	"context"
	"math"
	"testing"

	"phka/internal/models/db_models"
	"phka/internal/repositories"
)

func TestBuildEventDashboard_CurrencyTotals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "+85512100001")
	event := seedEvent(t, db, user.ID, "dara-wedding")

	guests := []db_models.Guest{
		{EventID: event.ID, Name: "A", Status: db_models.RSVPConfirmed, HeadCount: 2},
		{EventID: event.ID, Name: "B", Status: db_models.RSVPConfirmed, HeadCount: 1},
		{EventID: event.ID, Name: "C", Status: db_models.RSVPPending, HeadCount: 4},
		{EventID: event.ID, Name: "D", Status: db_models.RSVPRejected, HeadCount: 1},
	}
	for i := range guests {
		if err := db.Create(&guests[i]).Error; err != nil {
			t.Fatalf("seed guest: %v", err)
		}
	}

	// USD and KHR amounts live in separate columns; the KHR column on a
	// USD gift stays zero and must not leak into the KHR total.
	gifts := []db_models.Gift{
		{EventID: event.ID, Currency: db_models.CurrencyUSD, Payment: db_models.PaymentCash, AmountUSD: 100},
		{EventID: event.ID, Currency: db_models.CurrencyUSD, Payment: db_models.PaymentBank, AmountUSD: 50.5},
		{EventID: event.ID, Currency: db_models.CurrencyKHR, Payment: db_models.PaymentCash, AmountKHR: 410000},
	}
	for i := range gifts {
		if err := db.Create(&gifts[i]).Error; err != nil {
			t.Fatalf("seed gift: %v", err)
		}
	}

	expenses := []db_models.Expense{
		{EventID: event.ID, Name: "Venue", BudgetAmount: 500, ActualAmount: 450},
		{EventID: event.ID, Name: "Catering", BudgetAmount: 300, ActualAmount: 320},
	}
	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	svc := NewDashboardService(
		repositories.NewEventRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewGiftRepository(db),
		repositories.NewExpenseRepository(db),
		repositories.NewDashboardRepository(db))

	dashboard, err := svc.BuildEventDashboard(ctx, event.ID.String())
	if err != nil {
		t.Fatalf("BuildEventDashboard: %v", err)
	}

	if dashboard.Guests.Total != 4 {
		t.Errorf("guests total = %d, want 4", dashboard.Guests.Total)
	}
	if dashboard.Guests.Confirmed != 2 || dashboard.Guests.Pending != 1 || dashboard.Guests.Rejected != 1 {
		t.Errorf("guest status counts = %d/%d/%d, want 2/1/1",
			dashboard.Guests.Confirmed, dashboard.Guests.Pending, dashboard.Guests.Rejected)
	}
	if dashboard.Guests.HeadCount != 8 {
		t.Errorf("head count = %d, want 8", dashboard.Guests.HeadCount)
	}

	if dashboard.Gifts.TotalIncomeUSD != 150.5 {
		t.Errorf("USD income = %v, want 150.5", dashboard.Gifts.TotalIncomeUSD)
	}
	if dashboard.Gifts.TotalIncomeKHR != 410000 {
		t.Errorf("KHR income = %v, want 410000", dashboard.Gifts.TotalIncomeKHR)
	}
	if dashboard.Gifts.CountUSD != 2 || dashboard.Gifts.CountKHR != 1 {
		t.Errorf("gift counts = %d USD / %d KHR, want 2/1", dashboard.Gifts.CountUSD, dashboard.Gifts.CountKHR)
	}

	wantCombined := 150.5 + 410000*KHRToUSDRate
	if math.Abs(dashboard.Gifts.TotalGiftIncome-wantCombined) > 1e-9 {
		t.Errorf("combined income = %v, want %v", dashboard.Gifts.TotalGiftIncome, wantCombined)
	}

	if dashboard.Expenses.TotalBudget != 800 || dashboard.Expenses.TotalActual != 770 {
		t.Errorf("expenses = %v/%v, want 800/770", dashboard.Expenses.TotalBudget, dashboard.Expenses.TotalActual)
	}

	wantNet := wantCombined - 770
	if math.Abs(dashboard.NetAmountUSD-wantNet) > 1e-9 {
		t.Errorf("net = %v, want %v", dashboard.NetAmountUSD, wantNet)
	}
}

func TestBuildEventDashboard_EmptyEvent(t *testing.T) {
	db := newTestDB(t)

	user := seedUser(t, db, "+85512100002")
	event := seedEvent(t, db, user.ID, "empty-event")

	svc := NewDashboardService(
		repositories.NewEventRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewGiftRepository(db),
		repositories.NewExpenseRepository(db),
		repositories.NewDashboardRepository(db))

	dashboard, err := svc.BuildEventDashboard(context.Background(), event.ID.String())
	if err != nil {
		t.Fatalf("BuildEventDashboard: %v", err)
	}

	if dashboard.Guests.Total != 0 || dashboard.Gifts.TotalGiftIncome != 0 || dashboard.NetAmountUSD != 0 {
		t.Errorf("empty event should produce zeroes, got %+v", dashboard)
	}
}
