package models

// RecipeRequirement is a single material needed by a recipe.
type RecipeRequirement struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// RecipeDescriptor describes one crafting recipe as extracted by the
// page-scraping collaborator. CraftTimeSeconds must be > 0; descriptors are
// validated at the input boundary before reaching the profit engine.
type RecipeDescriptor struct {
	OutputName       string              `json:"outputName"`
	CraftTimeSeconds float64             `json:"craftTimeSeconds"`
	Requirements     []RecipeRequirement `json:"requirements"`
}

// ProfitResult is the computed profit figure for one recipe. It is computed
// fresh on every request and never cached.
//
// When Resolvable is false at least one ingredient (or the output itself)
// could not be priced, and all cost-derived fields are zeroed so the caller
// never renders a misleading partial number.
type ProfitResult struct {
	SellPrice         int64
	SellPriceAfterTax int64
	TotalInputCost    int64
	ProfitPerCraft    int64
	ProfitPerHour     int64
	Resolvable        bool
}
