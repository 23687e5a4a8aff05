// Package core answers availability questions against an attraction catalog:
// is an attraction open on a given day, and if not, what to visit instead.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/log"
)

// Status classifies an availability answer.
type Status int

const (
	StatusOpen Status = iota
	StatusClosedWithAlternative
	StatusClosedNoAlternative
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosedWithAlternative:
		return "closed_with_alternative"
	case StatusClosedNoAlternative:
		return "closed_no_alternative"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Availability is the result of resolving one attraction on one (optional) date.
// Alternative is set only for StatusClosedWithAlternative.
type Availability struct {
	Status      Status
	Attraction  catalog.Attraction
	Date        catalog.Date
	Alternative *catalog.Attraction
}

// NotFoundError reports an identifier that is not in the catalog. ValidIDs
// lists every catalog id in catalog order so the caller can offer them.
type NotFoundError struct {
	Identifier string
	ValidIDs   []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("attraction %q not found (available: %s)", e.Identifier, strings.Join(e.ValidIDs, ", "))
}

// Observer is notified of every resolution outcome. It lets transport layers
// count outcomes without the resolver knowing about metrics.
type Observer func(outcome string)

// Resolver answers availability questions against a fixed catalog.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	catalog  *catalog.Catalog
	observer Observer
}

// NewResolver binds a resolver to c. observer may be nil.
func NewResolver(c *catalog.Catalog, observer Observer) *Resolver {
	return &Resolver{catalog: c, observer: observer}
}

// Catalog returns the catalog the resolver reads.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// NormalizeID maps free-form user input onto the catalog key space:
// trimmed of whitespace and quotes, lowercased, spaces become underscores.
func NormalizeID(identifier string) string {
	return strings.ReplaceAll(strings.ToLower(catalog.TrimInput(identifier)), " ", "_")
}

// Resolve determines whether identifier is open on date ("" means no date).
//
// When the attraction is closed on date, the alternative is the first other
// catalog entry, in catalog order, that is not closed on that same date. No
// ranking by price or distance is applied. A date that does not parse can never
// match a closure date, so it resolves as open.
func (r *Resolver) Resolve(ctx context.Context, identifier, date string) (Availability, error) {
	id := NormalizeID(identifier)
	attraction, ok := r.catalog.Lookup(id)
	if !ok {
		r.observe("not_found")
		log.Debugf(ctx, "Resolve: unknown attraction %q", id)
		return Availability{}, &NotFoundError{Identifier: id, ValidIDs: r.catalog.IDs()}
	}

	var day catalog.Date
	if strings.TrimSpace(date) != "" {
		parsed, err := catalog.ParseDate(date)
		if err != nil {
			log.Debugf(ctx, "Resolve: ignoring unparseable date for %s: %v", id, err)
		} else {
			day = parsed
		}
	}

	result := Availability{Status: StatusOpen, Attraction: attraction, Date: day}
	if !day.IsZero() && attraction.ClosedOnDate(day) {
		result.Status = StatusClosedNoAlternative
		r.catalog.Each(func(candidate catalog.Attraction) bool {
			if candidate.ID == id || candidate.ClosedOnDate(day) {
				return true
			}
			result.Status = StatusClosedWithAlternative
			result.Alternative = &candidate
			return false
		})
	}

	r.observe(result.Status.String())
	log.Debugf(ctx, "Resolve: %s on %q -> %s", id, day, result.Status)
	return result, nil
}

// Info returns one attraction by free-form identifier, without a date.
func (r *Resolver) Info(identifier string) (catalog.Attraction, error) {
	id := NormalizeID(identifier)
	attraction, ok := r.catalog.Lookup(id)
	if !ok {
		return catalog.Attraction{}, &NotFoundError{Identifier: id, ValidIDs: r.catalog.IDs()}
	}
	return attraction, nil
}

// ListAll returns every attraction in catalog order.
func (r *Resolver) ListAll() []catalog.Attraction {
	return r.catalog.All()
}

func (r *Resolver) observe(outcome string) {
	if r.observer != nil {
		r.observer(outcome)
	}
}
