package catalog

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// File is the on-disk layout of a catalog (YAML, JSON, TOML or EDN, chosen by
// extension). The order of the attractions list is the catalog order.
type File struct {
	Currency    string       `yaml:"currency" json:"currency"`
	Attractions []Attraction `yaml:"attractions" json:"attractions"`
}

// LoadFile reads and validates a catalog file. currency overrides the file's
// own currency when non-empty.
func LoadFile(path, currency string) (*Catalog, error) {
	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if len(f.Attractions) == 0 {
		return nil, fmt.Errorf("catalog %s has no attractions", path)
	}
	if currency == "" {
		currency = f.Currency
	}
	c, err := New(currency, f.Attractions)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}
