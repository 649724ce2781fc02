package repositories

import (
	"context"
	"testing"

	"phka/internal/models/db_models"
)

func TestExistsByPhoneOrName_PhoneWins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewGuestRepository(db)

	event := newEvent(t, db, "dup-check")
	mustCreate(t, db, &db_models.Guest{EventID: event.ID, Name: "Sok Dara", Phone: "+85512111111"})

	cases := []struct {
		name  string
		phone string
		gname string
		want  bool
	}{
		{"same phone, different name", "+85512111111", "Someone Else", true},
		{"same name, no phone given", "", "Sok Dara", true},
		// A phone is the stronger key: a fresh phone is not a duplicate
		// even when the name collides.
		{"same name, different phone", "+85512999999", "Sok Dara", false},
		{"fresh everything", "+85512999999", "New Guest", false},
	}
	for _, c := range cases {
		got, err := repo.ExistsByPhoneOrName(ctx, event.ID.String(), c.phone, c.gname)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExistsByPhoneOrName_ScopedToEvent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewGuestRepository(db)

	event := newEvent(t, db, "scope-a")
	other := newEvent(t, db, "scope-b")
	mustCreate(t, db, &db_models.Guest{EventID: event.ID, Name: "Sok", Phone: "+85512111111"})

	got, err := repo.ExistsByPhoneOrName(ctx, other.ID.String(), "+85512111111", "Sok")
	if err != nil {
		t.Fatalf("ExistsByPhoneOrName: %v", err)
	}
	if got {
		t.Error("duplicate check leaked across events")
	}
}

func TestCountByUser_SpansEvents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewGuestRepository(db)

	user := &db_models.User{Phone: "+85512300001", Name: "Owner"}
	mustCreate(t, db, user)

	first := &db_models.Event{UserID: user.ID, Name: "A", Slug: "span-a"}
	second := &db_models.Event{UserID: user.ID, Name: "B", Slug: "span-b"}
	mustCreate(t, db, first)
	mustCreate(t, db, second)

	mustCreate(t, db, &db_models.Guest{EventID: first.ID, Name: "G1"})
	mustCreate(t, db, &db_models.Guest{EventID: second.ID, Name: "G2"})
	mustCreate(t, db, &db_models.Guest{EventID: second.ID, Name: "G3"})

	stranger := newEvent(t, db, "span-stranger")
	mustCreate(t, db, &db_models.Guest{EventID: stranger.ID, Name: "Other"})

	n, err := repo.CountByUser(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}
