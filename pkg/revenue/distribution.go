package revenue

// Share is one slice of the platform revenue distribution.
type Share struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// DefaultDistribution returns how platform revenue is split across products.
// The percentages sum to 100.
func DefaultDistribution() []Share {
	return []Share{
		{Name: "Far Inference", Percentage: 25},
		{Name: "Far GPU De-Pin", Percentage: 30},
		{Name: "Farcana Game", Percentage: 15},
		{Name: "Far DeSci", Percentage: 10},
		{Name: "Far GameD", Percentage: 8},
		{Name: "FarTwin AI", Percentage: 7},
		{Name: "Staking Rewards", Percentage: 5},
	}
}

// TotalPercentage sums the shares.
func TotalPercentage(shares []Share) float64 {
	total := 0.0
	for _, s := range shares {
		total += s.Percentage
	}
	return total
}
