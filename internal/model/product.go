package model

import "time"

// Product represents a catalog product as served by the backend. The core
// only caches copies for display and price calculation; the backend owns
// the catalog.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"productName"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	FinalPrice  float64   `json:"finalPrice,omitempty"`
	Category    string    `json:"category,omitempty"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Discount    *Discount `json:"discount,omitempty"`
	Concerns    []string  `json:"concerns,omitempty"`
	Active      bool      `json:"isActive"`
}

// Discount describes a percentage discount with an optional active window.
// A yearly discount repeats its window every year (dates compared by month
// and day).
type Discount struct {
	Percentage float64    `json:"percentage"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Yearly     bool       `json:"isYearly,omitempty"`
}

// ActiveAt reports whether the discount applies at the given time.
// A discount without dates is always active.
func (d Discount) ActiveAt(now time.Time) bool {
	if d.Yearly && d.StartDate != nil && d.EndDate != nil {
		return yearlyWindowContains(*d.StartDate, *d.EndDate, now)
	}
	if d.StartDate != nil && now.Before(*d.StartDate) {
		return false
	}
	if d.EndDate != nil && now.After(*d.EndDate) {
		return false
	}
	return true
}

func yearlyWindowContains(start, end, now time.Time) bool {
	s := start.Month()*32 + time.Month(start.Day())
	e := end.Month()*32 + time.Month(end.Day())
	n := now.Month()*32 + time.Month(now.Day())
	if s <= e {
		return n >= s && n <= e
	}
	// window wraps over new year
	return n >= s || n <= e
}

// EffectiveUnitPrice returns the price a single unit sells for at the given
// time: the backend-computed final price when present, otherwise the locally
// discounted price, otherwise the list price.
func (p Product) EffectiveUnitPrice(now time.Time) float64 {
	if p.FinalPrice > 0 {
		return p.FinalPrice
	}
	if p.Discount != nil && p.Discount.ActiveAt(now) {
		return p.Price * (1 - p.Discount.Percentage/100)
	}
	return p.Price
}
