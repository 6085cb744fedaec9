package api

import (
	"strings"
	"time"

	"leadcrm/internal/types"
)

// The backend still speaks the legacy lead fields alongside the new ones:
// price/pricePaid, clicks/invoiceBilled (a financial amount that reuses the
// old numeric column), firstName+lastName/companyRepresentativeName and
// domain/companyName. New values win on read, legacy fills the gaps, and
// writes always emit both pairs so older backend paths keep working. The
// canonical types.Lead never carries the duplication.

type leadWire struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	CompanyRepresentativeName string `json:"companyRepresentativeName,omitempty"`
	CompanyName               string `json:"companyName,omitempty"`
	FirstName                 string `json:"firstName,omitempty"`
	LastName                  string `json:"lastName,omitempty"`
	Domain                    string `json:"domain,omitempty"`

	PricePaid     *float64 `json:"pricePaid,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	InvoiceBilled *float64 `json:"invoiceBilled,omitempty"`
	Clicks        *float64 `json:"clicks,omitempty"`

	Status     types.LeadStatus `json:"status"`
	Source     types.LeadSource `json:"source"`
	AssignedTo *string          `json:"assignedTo"`
	Notes      string           `json:"notes"`
	Brand      string           `json:"brand,omitempty"`
	Product    string           `json:"product,omitempty"`
	Location   string           `json:"location,omitempty"`
	CreatedAt  time.Time        `json:"createdAt,omitempty"`
}

func leadFromWire(w leadWire) types.Lead {
	l := types.Lead{
		ID:          w.ID,
		Name:        w.Name,
		Email:       w.Email,
		Phone:       w.Phone,
		RepName:     w.CompanyRepresentativeName,
		CompanyName: w.CompanyName,
		Status:      w.Status,
		Source:      w.Source,
		Notes:       w.Notes,
		Brand:       w.Brand,
		Product:     w.Product,
		Location:    w.Location,
		CreatedAt:   w.CreatedAt,
	}
	if l.RepName == "" {
		l.RepName = strings.TrimSpace(w.FirstName + " " + w.LastName)
	}
	if l.CompanyName == "" {
		l.CompanyName = w.Domain
	}
	l.PricePaid = pickAmount(w.PricePaid, w.Price)
	l.InvoiceBilled = pickAmount(w.InvoiceBilled, w.Clicks)
	if w.AssignedTo != nil {
		l.AssignedTo = *w.AssignedTo
	}
	return l
}

func leadToWire(l types.Lead) leadWire {
	first, last := splitName(l.RepName)
	w := leadWire{
		ID:    l.ID,
		Name:  l.Name,
		Email: l.Email,
		Phone: l.Phone,

		CompanyRepresentativeName: l.RepName,
		CompanyName:               l.CompanyName,
		FirstName:                 first,
		LastName:                  last,
		Domain:                    l.CompanyName,

		PricePaid:     amountPtr(l.PricePaid),
		Price:         amountPtr(l.PricePaid),
		InvoiceBilled: amountPtr(l.InvoiceBilled),
		Clicks:        amountPtr(l.InvoiceBilled),

		Status:   l.Status,
		Source:   l.Source,
		Notes:    l.Notes,
		Brand:    l.Brand,
		Product:  l.Product,
		Location: l.Location,
	}
	if !l.CreatedAt.IsZero() {
		w.CreatedAt = l.CreatedAt
	}
	if l.AssignedTo != "" {
		assigned := l.AssignedTo
		w.AssignedTo = &assigned
	}
	return w
}

// pickAmount prefers the new field, falls back to the legacy one, and treats
// both-absent as zero.
func pickAmount(newField, legacy *float64) float64 {
	if newField != nil {
		return *newField
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}

func amountPtr(v float64) *float64 {
	return &v
}

// splitName maps the canonical representative name back onto the legacy
// firstName/lastName columns: first token and remainder.
func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
