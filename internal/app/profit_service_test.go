package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/tradepost/internal/models"
)

func TestProfitService_Compute(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{
		"Healing Potion": 100,
		"Cheap Vial":     2,
	}}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 10,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Cheap Vial", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if !result.Resolvable {
		t.Fatal("expected resolvable result")
	}
	if result.SellPriceAfterTax != 88 {
		t.Errorf("expected after-tax 88, got %d", result.SellPriceAfterTax)
	}
	if result.TotalInputCost != 2 {
		t.Errorf("expected input cost 2, got %d", result.TotalInputCost)
	}
	if result.ProfitPerCraft != 86 {
		t.Errorf("expected profit per craft 86, got %d", result.ProfitPerCraft)
	}
	if result.ProfitPerHour != 30960 {
		t.Errorf("expected profit per hour 30960, got %d", result.ProfitPerHour)
	}
}

func TestProfitService_Compute_UnpricedIngredient(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{"Healing Potion": 100}}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 10,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Cheap Vial", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// A recipe with any unpriced ingredient must never show a partial
	// profit figure.
	if result.Resolvable {
		t.Fatal("expected unresolvable result")
	}
	if result.TotalInputCost != 0 || result.ProfitPerCraft != 0 || result.ProfitPerHour != 0 {
		t.Errorf("expected zeroed cost fields, got %+v", result)
	}
}

func TestProfitService_Compute_StoreNotReadyDegrades(t *testing.T) {
	resolver := &mockResolver{
		prices: map[string]int64{"Healing Potion": 100},
		errs:   map[string]error{"Cheap Vial": ErrStoreNotReady},
	}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 10,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Cheap Vial", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.Resolvable {
		t.Error("expected unresolvable result when the store is not ready")
	}
}

func TestProfitService_Compute_UnresolvedOutput(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{"Cheap Vial": 2}}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Mystery Brew",
		CraftTimeSeconds: 10,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Cheap Vial", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.Resolvable || result.SellPrice != 0 {
		t.Errorf("expected fully zeroed unresolvable result, got %+v", result)
	}
}

func TestProfitService_Compute_NonSellableException(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{"Silk Thread": 340}}
	svc := NewProfitService(resolver, map[string]int64{"Soul Lantern": 1}, zerolog.Nop())

	// The output is not market-traded; its nominal sell price applies and
	// the resolver is never consulted for it.
	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Soul Lantern",
		CraftTimeSeconds: 60,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Silk Thread", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !result.Resolvable {
		t.Fatal("expected resolvable result")
	}
	if result.SellPrice != 1 {
		t.Errorf("expected nominal sell price 1, got %d", result.SellPrice)
	}
	if result.TotalInputCost != 680 {
		t.Errorf("expected input cost 680, got %d", result.TotalInputCost)
	}
}

func TestProfitService_Compute_EmptyRequirements(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{"Healing Potion": 100}}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 10,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.TotalInputCost != 0 {
		t.Errorf("expected zero input cost, got %d", result.TotalInputCost)
	}
	if result.ProfitPerCraft != result.SellPriceAfterTax {
		t.Errorf("expected profit to equal after-tax sell price, got %+v", result)
	}
}

func TestProfitService_Compute_DuplicateRequirementsAccumulate(t *testing.T) {
	resolver := &mockResolver{prices: map[string]int64{
		"Healing Potion": 100,
		"Cheap Vial":     2,
	}}
	svc := NewProfitService(resolver, nil, zerolog.Nop())

	result, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 10,
		Requirements: []models.RecipeRequirement{
			{ItemName: "Cheap Vial", Quantity: 1},
			{ItemName: "Cheap Vial", Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.TotalInputCost != 8 {
		t.Errorf("expected duplicate requirements to accumulate to 8, got %d", result.TotalInputCost)
	}
}

func TestProfitService_Compute_InvalidDescriptor(t *testing.T) {
	svc := NewProfitService(&mockResolver{}, nil, zerolog.Nop())

	_, err := svc.Compute(context.Background(), models.RecipeDescriptor{
		OutputName:       "Healing Potion",
		CraftTimeSeconds: 0,
	})
	if err == nil {
		t.Error("expected error for zero craft time")
	}
}
