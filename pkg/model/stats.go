package model

import "github.com/samber/lo"

type CombinationStats struct {
	Total           int    `json:"total"`
	MinCreditsClass uint64 `json:"min_credits_class"`
	MaxCreditsClass uint64 `json:"max_credits_class"`
	MinCreditsWork  uint64 `json:"min_credits_work"`
	MaxCreditsWork  uint64 `json:"max_credits_work"`
}

func Stats(combinations []Combination) CombinationStats {
	if len(combinations) == 0 {
		return CombinationStats{}
	}

	creditsClass := lo.Map(combinations, func(combination Combination, _ int) uint64 { return combination.Credits.Class })
	creditsWork := lo.Map(combinations, func(combination Combination, _ int) uint64 { return combination.Credits.Work })

	return CombinationStats{
		Total:           len(combinations),
		MinCreditsClass: lo.Min(creditsClass),
		MaxCreditsClass: lo.Max(creditsClass),
		MinCreditsWork:  lo.Min(creditsWork),
		MaxCreditsWork:  lo.Max(creditsWork),
	}
}
