package services

import (
	"testing"

	"nestegg/internal/models"
	"nestegg/internal/testutil"
)

func newSavings(name string) *models.Investment {
	return &models.Investment{
		Name:              name,
		InitialAmount:     10000,
		InterestRate:      5,
		Years:             10,
		Kind:              models.KindSavingsAccount,
		CompoundingPolicy: models.CompoundMonthly,
	}
}

func TestInvestmentCreate(t *testing.T) {
	t.Run("assigns_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		created, err := svc.Create(owner.ID, newSavings("Emergency Fund"))
		testutil.AssertNoError(t, err)

		if created.ID == "" {
			t.Fatal("expected assigned id")
		}
		if created.UserID != owner.ID {
			t.Errorf("expected owner %s, got %s", owner.ID, created.UserID)
		}
	})

	t.Run("keeps_provided_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		inv := newSavings("Emergency Fund")
		inv.ID = "11111111-1111-7111-8111-111111111111"
		created, err := svc.Create(owner.ID, inv)
		testutil.AssertNoError(t, err)

		if created.ID != inv.ID {
			t.Errorf("expected id preserved, got %s", created.ID)
		}
	})

	t.Run("empty_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.Create("", newSavings("Emergency Fund"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_entity_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		inv := newSavings("   ")
		_, err := svc.Create(owner.ID, inv)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		var count int64
		db.Model(&models.Investment{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no record persisted, got %d", count)
		}
	})

	t.Run("stock_normalized_to_annual", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		inv := &models.Investment{
			Name:              "Index Fund",
			InitialAmount:     1000,
			InterestRate:      7,
			Years:             10,
			Kind:              models.KindStocks,
			CompoundingPolicy: models.CompoundMonthly,
			SelectedSymbol:    "VOO",
		}
		created, err := svc.Create(owner.ID, inv)
		testutil.AssertNoError(t, err)

		if created.CompoundingPolicy != models.CompoundAnnual {
			t.Errorf("expected annual policy for stocks, got %d", created.CompoundingPolicy)
		}
	})
}

func TestInvestmentList(t *testing.T) {
	t.Run("empty_owner_collection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		investments, err := svc.List(owner.ID)
		testutil.AssertNoError(t, err)
		if len(investments) != 0 {
			t.Errorf("expected empty list, got %d", len(investments))
		}
	})

	t.Run("owner_scoping", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		ownerA := testutil.CreateTestProfile(t, db)
		ownerB := testutil.CreateTestProfile(t, db)

		_, err := svc.Create(ownerA.ID, newSavings("A1"))
		testutil.AssertNoError(t, err)
		_, err = svc.Create(ownerA.ID, newSavings("A2"))
		testutil.AssertNoError(t, err)
		_, err = svc.Create(ownerB.ID, newSavings("B1"))
		testutil.AssertNoError(t, err)

		listA, err := svc.List(ownerA.ID)
		testutil.AssertNoError(t, err)
		if len(listA) != 2 {
			t.Fatalf("expected 2 investments for owner A, got %d", len(listA))
		}
		for _, inv := range listA {
			if inv.UserID != ownerA.ID {
				t.Errorf("owner A list leaked record owned by %s", inv.UserID)
			}
		}

		listB, err := svc.List(ownerB.ID)
		testutil.AssertNoError(t, err)
		if len(listB) != 1 || listB[0].Name != "B1" {
			t.Errorf("expected only B1 for owner B, got %v", listB)
		}
	})
}

func TestInvestmentGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)
		inv := testutil.CreateTestInvestment(t, db, owner.ID)

		got, err := svc.Get(owner.ID, inv.ID)
		testutil.AssertNoError(t, err)
		if got.ID != inv.ID {
			t.Errorf("expected %s, got %s", inv.ID, got.ID)
		}
	})

	t.Run("other_owner_invisible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		ownerA := testutil.CreateTestProfile(t, db)
		ownerB := testutil.CreateTestProfile(t, db)
		inv := testutil.CreateTestInvestment(t, db, ownerA.ID)

		_, err := svc.Get(ownerB.ID, inv.ID)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestInvestmentUpdate(t *testing.T) {
	t.Run("full_replace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		contrib := 100.0
		inv := newSavings("Emergency Fund")
		inv.MonthlyContribution = &contrib
		created, err := svc.Create(owner.ID, inv)
		testutil.AssertNoError(t, err)

		// Replacement omits the contribution; full-replace wipes it.
		replacement := newSavings("Renamed Fund")
		replacement.ID = created.ID
		replacement.UserID = owner.ID
		replacement.InterestRate = 4

		updated, err := svc.Update(replacement)
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed Fund" || updated.InterestRate != 4 {
			t.Errorf("expected replaced fields, got %+v", updated)
		}

		stored, err := svc.Get(owner.ID, created.ID)
		testutil.AssertNoError(t, err)
		if stored.MonthlyContribution != nil {
			t.Errorf("expected omitted contribution wiped, got %v", *stored.MonthlyContribution)
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)

		inv := newSavings("Emergency Fund")
		inv.UserID = owner.ID
		_, err := svc.Update(inv)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("cross_owner_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		ownerA := testutil.CreateTestProfile(t, db)
		ownerB := testutil.CreateTestProfile(t, db)
		inv := testutil.CreateTestInvestment(t, db, ownerA.ID)

		hijack := newSavings("Hijack")
		hijack.ID = inv.ID
		hijack.UserID = ownerB.ID
		_, err := svc.Update(hijack)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestInvestmentDelete(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		owner := testutil.CreateTestProfile(t, db)
		inv := testutil.CreateTestInvestment(t, db, owner.ID)

		testutil.AssertNoError(t, svc.Delete(owner.ID, inv.ID))
		// Second delete of the same id is already-deleted, not an error.
		testutil.AssertNoError(t, svc.Delete(owner.ID, inv.ID))

		_, err := svc.Get(owner.ID, inv.ID)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		ownerA := testutil.CreateTestProfile(t, db)
		ownerB := testutil.CreateTestProfile(t, db)
		inv := testutil.CreateTestInvestment(t, db, ownerA.ID)

		// Owner B deleting A's id succeeds as a no-op without touching it.
		testutil.AssertNoError(t, svc.Delete(ownerB.ID, inv.ID))

		_, err := svc.Get(ownerA.ID, inv.ID)
		testutil.AssertNoError(t, err)
	})
}
