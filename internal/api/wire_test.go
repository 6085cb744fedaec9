package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadcrm/internal/types"
)

func f64(v float64) *float64 { return &v }

func TestLeadFromWirePrefersNewFields(t *testing.T) {
	w := leadWire{
		CompanyRepresentativeName: "Ada Lovelace",
		CompanyName:               "Analytical Engines Ltd",
		FirstName:                 "Old",
		LastName:                  "Name",
		Domain:                    "legacy.example",
		PricePaid:                 f64(100),
		Price:                     f64(35),
		InvoiceBilled:             f64(50),
		Clicks:                    f64(12),
	}
	l := leadFromWire(w)
	assert.Equal(t, "Ada Lovelace", l.RepName)
	assert.Equal(t, "Analytical Engines Ltd", l.CompanyName)
	assert.Equal(t, 100.0, l.PricePaid)
	assert.Equal(t, 50.0, l.InvoiceBilled)
}

func TestLeadFromWireLegacyFallback(t *testing.T) {
	w := leadWire{
		FirstName: "Grace",
		LastName:  "Hopper",
		Domain:    "cobol.example",
		Price:     f64(35),
		Clicks:    f64(12),
	}
	l := leadFromWire(w)
	assert.Equal(t, "Grace Hopper", l.RepName)
	assert.Equal(t, "cobol.example", l.CompanyName)
	assert.Equal(t, 35.0, l.PricePaid)
	assert.Equal(t, 12.0, l.InvoiceBilled)
}

func TestLeadToWireEmitsBothFieldPairs(t *testing.T) {
	l := types.Lead{
		RepName:       "Grace Hopper",
		CompanyName:   "cobol.example",
		PricePaid:     100,
		InvoiceBilled: 50,
		AssignedTo:    "u1",
	}
	w := leadToWire(l)

	// Backward compatibility: both the new and the legacy columns go out.
	assert.Equal(t, "Grace Hopper", w.CompanyRepresentativeName)
	assert.Equal(t, "Grace", w.FirstName)
	assert.Equal(t, "Hopper", w.LastName)
	assert.Equal(t, "cobol.example", w.CompanyName)
	assert.Equal(t, "cobol.example", w.Domain)
	assert.Equal(t, 100.0, *w.PricePaid)
	assert.Equal(t, 100.0, *w.Price)
	assert.Equal(t, 50.0, *w.InvoiceBilled)
	assert.Equal(t, 50.0, *w.Clicks)
	assert.Equal(t, "u1", *w.AssignedTo)
}

func TestLeadToWireUnassigned(t *testing.T) {
	w := leadToWire(types.Lead{Name: "No owner"})
	assert.Nil(t, w.AssignedTo)
}

func TestWireRoundTrip(t *testing.T) {
	l := types.Lead{
		ID:            "L1",
		Name:          "Big Deal",
		RepName:       "Ada Lovelace",
		CompanyName:   "Analytical Engines Ltd",
		PricePaid:     100,
		InvoiceBilled: 50,
		Status:        types.LeadConverted,
		Source:        types.SourceReferral,
		AssignedTo:    "u1",
	}
	assert.Equal(t, l, leadFromWire(leadToWire(l)))
}
