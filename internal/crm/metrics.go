package crm

import "leadcrm/internal/types"

// Metrics are the dashboard roll-ups derived from the cached lead list.
// Revenue figures count converted leads only.
type Metrics struct {
	TotalLeads       int
	Converted        int
	ConversionRate   float64 // percent of all leads
	RevenueCollected float64 // sum of PricePaid over converted leads
	RevenueInvoiced  float64 // sum of InvoiceBilled over converted leads
	ByStatus         map[types.LeadStatus]int
	BySource         map[types.LeadSource]int
}

// Metrics recomputes the dashboard aggregates from the current cache.
func (s *Store) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Metrics{
		ByStatus: make(map[types.LeadStatus]int),
		BySource: make(map[types.LeadSource]int),
	}
	for _, l := range s.leads {
		m.TotalLeads++
		m.ByStatus[l.Status]++
		m.BySource[l.Source]++
		if l.Status == types.LeadConverted {
			m.Converted++
			m.RevenueCollected += l.PricePaid
			m.RevenueInvoiced += l.InvoiceBilled
		}
	}
	if m.TotalLeads > 0 {
		m.ConversionRate = float64(m.Converted) / float64(m.TotalLeads) * 100
	}
	return m
}
