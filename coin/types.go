package coin

// Coin is an immutable value/weight pair. The same type models both a
// denomination (a configured coin kind) and a coin instance placed into a
// Combination; repetition of a denomination inside a combination is allowed.
type Coin struct {
	// Value is the face value of the coin. Strictly positive for real
	// denominations; zero only for the root sentinel.
	Value int

	// Weight is the carrying weight of the coin. Strictly positive for
	// real denominations; zero only for the root sentinel.
	Weight int
}

// Combination is an ordered multiset of coin instances representing one
// candidate (or partial) solution. Treat it as a value type: use Clone and
// Extend instead of sharing and appending to the same backing array.
type Combination []Coin

// Root returns the synthetic sentinel coin (value 0, weight 0) used to seed
// the recursive search so the "current coin" parameter is always defined.
// It must be stripped from a final combination before reporting totals.
func Root() Coin {
	return Coin{Value: 0, Weight: 0}
}

// IsRoot reports whether c is the zero sentinel.
func (c Coin) IsRoot() bool {
	return c.Value == 0 && c.Weight == 0
}
