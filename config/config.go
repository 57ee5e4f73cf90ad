package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/coinpack/coin"
)

// Sentinel errors for purse validation.
var (
	// ErrNoDenominations indicates the configuration defines no denominations.
	ErrNoDenominations = errors.New("config: no denominations configured")
	// ErrBadDenomination indicates a denomination with non-positive value or weight.
	ErrBadDenomination = errors.New("config: denomination value and weight must be positive")
	// ErrNegativeBudget indicates a negative weight budget.
	ErrNegativeBudget = errors.New("config: budget must be non-negative")
)

// denominationDTO mirrors one [[denomination]] table in the TOML file.
type denominationDTO struct {
	Value  int `toml:"value"`
	Weight int `toml:"weight"`
}

// purseDTO mirrors the file layout; mapped to Purse after decoding.
type purseDTO struct {
	Budget        int               `toml:"budget"`
	Denominations []denominationDTO `toml:"denomination"`
}

// Purse is a validated solver input: the coins available and the weight
// that can be carried.
type Purse struct {
	Budget        int
	Denominations []coin.Coin
}

// Default returns the built-in purse: the Australian denomination table
// with the reference 300-unit (30 g) budget.
func Default() Purse {
	return Purse{
		Budget:        300,
		Denominations: coin.Australian(),
	}
}

// Load reads and validates a purse configuration from a TOML file.
func Load(path string) (Purse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Purse{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes and validates a purse configuration from TOML bytes.
func Parse(raw []byte) (Purse, error) {
	var dto purseDTO
	if err := toml.Unmarshal(raw, &dto); err != nil {
		return Purse{}, fmt.Errorf("config: decode: %w", err)
	}

	p := Purse{
		Budget:        dto.Budget,
		Denominations: make([]coin.Coin, len(dto.Denominations)),
	}
	for i, d := range dto.Denominations {
		p.Denominations[i] = coin.Coin{Value: d.Value, Weight: d.Weight}
	}

	if err := p.Validate(); err != nil {
		return Purse{}, err
	}

	return p, nil
}

// Validate checks the purse against the solver's preconditions.
func (p Purse) Validate() error {
	if p.Budget < 0 {
		return fmt.Errorf("budget %d: %w", p.Budget, ErrNegativeBudget)
	}
	if len(p.Denominations) == 0 {
		return ErrNoDenominations
	}
	for i, c := range p.Denominations {
		if c.Value <= 0 || c.Weight <= 0 {
			return fmt.Errorf("denomination %d is %v: %w", i, c, ErrBadDenomination)
		}
	}

	return nil
}
