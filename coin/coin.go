package coin

import (
	"fmt"
	"sort"
	"strings"
)

// Density returns the value carried per unit of weight, computed with
// fractional precision. The root sentinel has density 0.
func (c Coin) Density() float64 {
	if c.Weight == 0 {
		return 0
	}

	return float64(c.Value) / float64(c.Weight)
}

// String renders the coin as Coin(v=value, w=weight).
func (c Coin) String() string {
	return fmt.Sprintf("Coin(v=%d, w=%d)", c.Value, c.Weight)
}

// TotalValue returns the sum of the face values of all coins in m.
func (m Combination) TotalValue() int {
	var total int
	for _, c := range m {
		total += c.Value
	}

	return total
}

// TotalWeight returns the sum of the weights of all coins in m.
func (m Combination) TotalWeight() int {
	var total int
	for _, c := range m {
		total += c.Weight
	}

	return total
}

// Clone returns an independent copy of m. Mutating the copy never affects
// the original, and vice versa. A nil combination clones to nil.
func (m Combination) Clone() Combination {
	if m == nil {
		return nil
	}
	out := make(Combination, len(m))
	copy(out, m)

	return out
}

// Extend returns a new combination consisting of m followed by c. The
// receiver is never modified: the result always has fresh backing storage,
// so sibling candidates derived from the same ancestor stay untouched.
func (m Combination) Extend(c Coin) Combination {
	out := make(Combination, len(m)+1)
	copy(out, m)
	out[len(m)] = c

	return out
}

// String renders the combination as [Coin(v=..., w=...), ...].
func (m Combination) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')

	return b.String()
}

// SortByDensity orders coins in-place by descending value density.
// Coins with equal density keep no particular relative order; the ordering
// affects only which equally valuable combination a search surfaces first,
// never which total value is optimal.
func SortByDensity(coins []Coin) {
	sort.Slice(coins, func(i, j int) bool {
		return coins[i].Density() > coins[j].Density()
	})
}

// Australian returns the reference denomination set: AUD coins with face
// values in cents and masses in tenths of a gram.
//
// ref: https://en.wikipedia.org/wiki/Coins_of_the_Australian_dollar
func Australian() []Coin {
	return []Coin{
		{Value: 1, Weight: 26}, // 1c, 2.6g
		{Value: 2, Weight: 52},
		{Value: 5, Weight: 28},
		{Value: 10, Weight: 56},
		{Value: 20, Weight: 113},
		{Value: 50, Weight: 155},
		{Value: 100, Weight: 90},
		{Value: 200, Weight: 66},
	}
}
