package orm

import (
	"fmt"

	"github.com/va6996/tripmate/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttractionRecord is one catalog row. Position keeps catalog order.
type AttractionRecord struct {
	ID       string `gorm:"primaryKey"`
	Position int    `gorm:"index"`
	Name     string `gorm:"not null"`
	ClosedOn string // YYYY-MM-DD, empty when never closed
	Price    float64
	Location string
	Note     string
	Hours    map[string]string `gorm:"serializer:json"`
}

func (AttractionRecord) TableName() string {
	return "attractions"
}

func (r *AttractionRecord) ToAttraction() (catalog.Attraction, error) {
	a := catalog.Attraction{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Location: r.Location,
		Note:     r.Note,
		Hours:    r.Hours,
	}
	if r.ClosedOn != "" {
		day, err := catalog.ParseDate(r.ClosedOn)
		if err != nil {
			return catalog.Attraction{}, fmt.Errorf("attraction %s: %w", r.ID, err)
		}
		a.ClosedOn = day
	}
	return a, nil
}

func AttractionRecordFrom(a catalog.Attraction, position int) *AttractionRecord {
	r := &AttractionRecord{
		ID:       a.ID,
		Position: position,
		Name:     a.Name,
		Price:    a.Price,
		Location: a.Location,
		Note:     a.Note,
		Hours:    a.Hours,
	}
	if !a.ClosedOn.IsZero() {
		r.ClosedOn = a.ClosedOn.String()
	}
	return r
}

// SeedCatalog upserts every attraction of c, keeping its order.
func SeedCatalog(db *gorm.DB, c *catalog.Catalog) error {
	records := make([]*AttractionRecord, 0, c.Len())
	for i, a := range c.All() {
		records = append(records, AttractionRecordFrom(a, i))
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
	})
}

// LoadCatalog builds a catalog from the attractions table in position order.
func LoadCatalog(db *gorm.DB, currency string) (*catalog.Catalog, error) {
	var records []AttractionRecord
	if err := db.Order("position ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load attractions: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("attractions table is empty")
	}

	attractions := make([]catalog.Attraction, 0, len(records))
	for i := range records {
		a, err := records[i].ToAttraction()
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, a)
	}
	return catalog.New(currency, attractions)
}
