package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
)

type mockInvestmentService struct {
	createFn func(ownerID string, inv *models.Investment) (*models.Investment, error)
	listFn   func(ownerID string) ([]models.Investment, error)
	getFn    func(ownerID, id string) (*models.Investment, error)
	updateFn func(inv *models.Investment) (*models.Investment, error)
	deleteFn func(ownerID, id string) error
}

func (m *mockInvestmentService) Create(ownerID string, inv *models.Investment) (*models.Investment, error) {
	if m.createFn != nil {
		return m.createFn(ownerID, inv)
	}
	inv.UserID = ownerID
	inv.ID = "inv-1"
	return inv, nil
}

func (m *mockInvestmentService) List(ownerID string) ([]models.Investment, error) {
	if m.listFn != nil {
		return m.listFn(ownerID)
	}
	return []models.Investment{}, nil
}

func (m *mockInvestmentService) Get(ownerID, id string) (*models.Investment, error) {
	if m.getFn != nil {
		return m.getFn(ownerID, id)
	}
	return &models.Investment{
		Base:              models.Base{ID: id},
		UserID:            ownerID,
		Name:              "Savings",
		InitialAmount:     1000,
		InterestRate:      5,
		Years:             10,
		Kind:              models.KindSavingsAccount,
		CompoundingPolicy: models.CompoundAnnual,
	}, nil
}

func (m *mockInvestmentService) Update(inv *models.Investment) (*models.Investment, error) {
	if m.updateFn != nil {
		return m.updateFn(inv)
	}
	return inv, nil
}

func (m *mockInvestmentService) Delete(ownerID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ownerID, id)
	}
	return nil
}

func setupInvestmentRouter(handler *InvestmentHandler, identityID string) *gin.Engine {
	r := gin.New()
	grp := r.Group("/investments", injectIdentity(identityID))
	grp.POST("", handler.CreateInvestment)
	grp.GET("", handler.ListInvestments)
	grp.GET("/:id", handler.GetInvestment)
	grp.PUT("/:id", handler.UpdateInvestment)
	grp.DELETE("/:id", handler.DeleteInvestment)
	grp.GET("/:id/projection", handler.GetProjection)
	return r
}

const validInvestmentBody = `{
	"name": "Savings",
	"initial_amount": 1000,
	"interest_rate": 5,
	"years": 10,
	"kind": "savingsAccount",
	"compounding_policy": 12
}`

func TestCreateInvestment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var gotOwner string
		var gotInv *models.Investment
		handler := NewInvestmentHandler(&mockInvestmentService{
			createFn: func(ownerID string, inv *models.Investment) (*models.Investment, error) {
				gotOwner, gotInv = ownerID, inv
				inv.ID = "inv-1"
				return inv, nil
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodPost, "/investments", validInvestmentBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if gotOwner != "owner-1" {
			t.Errorf("expected owner-1, got %s", gotOwner)
		}
		if gotInv.CompoundingPolicy != models.CompoundMonthly {
			t.Errorf("expected monthly policy, got %d", gotInv.CompoundingPolicy)
		}
	})

	t.Run("defaults_policy_to_annual", func(t *testing.T) {
		var gotInv *models.Investment
		handler := NewInvestmentHandler(&mockInvestmentService{
			createFn: func(_ string, inv *models.Investment) (*models.Investment, error) {
				gotInv = inv
				return inv, nil
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodPost, "/investments",
			`{"name":"CD","initial_amount":500,"interest_rate":3,"years":5,"kind":"bonds"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if gotInv.CompoundingPolicy != models.CompoundAnnual {
			t.Errorf("expected annual default, got %d", gotInv.CompoundingPolicy)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{})
		r := setupInvestmentRouter(handler, "")

		w := doJSON(t, r, http.MethodPost, "/investments", validInvestmentBody)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid_payload", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{})
		r := setupInvestmentRouter(handler, "owner-1")

		cases := map[string]string{
			"bad_kind":    `{"name":"X","initial_amount":100,"interest_rate":5,"years":10,"kind":"crypto"}`,
			"bad_policy":  `{"name":"X","initial_amount":100,"interest_rate":5,"years":10,"kind":"bonds","compounding_policy":3}`,
			"zero_amount": `{"name":"X","initial_amount":0,"interest_rate":5,"years":10,"kind":"bonds"}`,
			"years_over":  `{"name":"X","initial_amount":100,"interest_rate":5,"years":51,"kind":"bonds"}`,
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				w := doJSON(t, r, http.MethodPost, "/investments", body)
				if w.Code != http.StatusBadRequest {
					t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
				}
			})
		}
	})
}

func TestListInvestments(t *testing.T) {
	handler := NewInvestmentHandler(&mockInvestmentService{
		listFn: func(ownerID string) ([]models.Investment, error) {
			return []models.Investment{
				{Base: models.Base{ID: "inv-1"}, UserID: ownerID, Name: "A"},
				{Base: models.Base{ID: "inv-2"}, UserID: ownerID, Name: "B"},
			}, nil
		},
	})
	r := setupInvestmentRouter(handler, "owner-1")

	w := doJSON(t, r, http.MethodGet, "/investments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	items := body["investments"].([]interface{})
	if len(items) != 2 {
		t.Errorf("expected 2 investments, got %d", len(items))
	}
}

func TestGetInvestment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodGet, "/investments/inv-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{
			getFn: func(_, _ string) (*models.Investment, error) {
				return nil, apperrors.ErrInvestmentNotFound
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodGet, "/investments/nope", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestUpdateInvestment(t *testing.T) {
	t.Run("sets_id_and_owner_from_request", func(t *testing.T) {
		var gotInv *models.Investment
		handler := NewInvestmentHandler(&mockInvestmentService{
			updateFn: func(inv *models.Investment) (*models.Investment, error) {
				gotInv = inv
				return inv, nil
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodPut, "/investments/inv-9", validInvestmentBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotInv.ID != "inv-9" || gotInv.UserID != "owner-1" {
			t.Errorf("expected inv-9/owner-1, got %s/%s", gotInv.ID, gotInv.UserID)
		}
	})

	t.Run("cross_owner_not_found", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{
			updateFn: func(_ *models.Investment) (*models.Investment, error) {
				return nil, apperrors.ErrInvestmentNotFound
			},
		})
		r := setupInvestmentRouter(handler, "owner-2")

		w := doJSON(t, r, http.MethodPut, "/investments/inv-9", validInvestmentBody)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestDeleteInvestment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		var gotOwner, gotID string
		handler := NewInvestmentHandler(&mockInvestmentService{
			deleteFn: func(ownerID, id string) error {
				gotOwner, gotID = ownerID, id
				return nil
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodDelete, "/investments/inv-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotOwner != "owner-1" || gotID != "inv-1" {
			t.Errorf("expected owner-1/inv-1, got %s/%s", gotOwner, gotID)
		}
	})

	t.Run("backend_failure", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockInvestmentService{
			deleteFn: func(_, _ string) error {
				return apperrors.Wrap(apperrors.ErrPersistence, fmt.Errorf("disk full"))
			},
		})
		r := setupInvestmentRouter(handler, "owner-1")

		w := doJSON(t, r, http.MethodDelete, "/investments/inv-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestGetProjection(t *testing.T) {
	contribution := 100.0
	handler := NewInvestmentHandler(&mockInvestmentService{
		getFn: func(ownerID, id string) (*models.Investment, error) {
			return &models.Investment{
				Base:                models.Base{ID: id},
				UserID:              ownerID,
				Name:                "Savings",
				InitialAmount:       10000,
				InterestRate:        5,
				Years:               10,
				Kind:                models.KindSavingsAccount,
				MonthlyContribution: &contribution,
				CompoundingPolicy:   models.CompoundMonthly,
			}, nil
		},
	})
	r := setupInvestmentRouter(handler, "owner-1")

	w := doJSON(t, r, http.MethodGet, "/investments/inv-1/projection", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	fv := body["future_value"].(float64)
	growth := body["yearly_growth"].([]interface{})
	if len(growth) != 10 {
		t.Fatalf("expected 10 growth entries, got %d", len(growth))
	}
	last := growth[len(growth)-1].(float64)
	if last != fv {
		t.Errorf("expected final growth entry %v to equal future value %v", last, fv)
	}
	if fv <= 10000 {
		t.Errorf("expected growth above the principal, got %v", fv)
	}
}
