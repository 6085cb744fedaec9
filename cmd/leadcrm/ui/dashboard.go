package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadcrm/internal/crm"
	"leadcrm/internal/types"
)

// dashboardPage shows pipeline metrics and target progress. Admins get
// every sales user's progress; sales users get their own.
type dashboardPage struct {
	store  *crm.Store
	user   types.User
	styles Styles

	metrics crm.Metrics
}

func newDashboardPage(store *crm.Store, user types.User, styles Styles) *dashboardPage {
	return &dashboardPage{store: store, user: user, styles: styles}
}

func (p *dashboardPage) Title() string   { return "Dashboard" }
func (p *dashboardPage) Capturing() bool { return false }

func (p *dashboardPage) Reload() {
	p.metrics = p.store.Metrics()
}

func (p *dashboardPage) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *dashboardPage) View(width int) string {
	var sb strings.Builder
	s := p.styles

	m := p.metrics
	cards := []string{
		s.Card.Render(fmt.Sprintf("Leads\n%s", s.Bold.Render(fmt.Sprintf("%d", m.TotalLeads)))),
		s.Card.Render(fmt.Sprintf("Converted\n%s", s.Bold.Render(fmt.Sprintf("%d", m.Converted)))),
		s.Card.Render(fmt.Sprintf("Conversion\n%s", s.Bold.Render(fmt.Sprintf("%.1f%%", m.ConversionRate)))),
		s.Card.Render(fmt.Sprintf("Collected\n%s", s.Bold.Render(fmt.Sprintf("%.2f", m.RevenueCollected)))),
		s.Card.Render(fmt.Sprintf("Invoiced\n%s", s.Bold.Render(fmt.Sprintf("%.2f", m.RevenueInvoiced)))),
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n\n")

	sb.WriteString(s.Title.Render("Pipeline"))
	sb.WriteString("\n")
	for _, status := range types.LeadStatuses {
		count := m.ByStatus[status]
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", status, s.Bold.Render(fmt.Sprintf("%d", count))))
	}
	sb.WriteString("\n")

	sb.WriteString(s.Title.Render("Target Progress"))
	sb.WriteString("\n")

	barWidth := width / 2
	if barWidth < 30 {
		barWidth = 30
	}

	if p.user.Role == types.RoleAdmin {
		names := make(map[string]string)
		for _, u := range p.store.Salespeople() {
			names[u.ID] = u.Name
		}
		targets := p.store.AllTargets()
		ids := make([]string, 0, len(targets))
		for id := range targets {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		if len(ids) == 0 {
			sb.WriteString(p.styles.Muted.Render("  No targets set."))
			sb.WriteString("\n")
		}
		for _, id := range ids {
			name := names[id]
			if name == "" {
				name = id
			}
			prog := p.store.CalculateUserProgress(id)
			sb.WriteString(fmt.Sprintf("  %s\n", s.Bold.Render(name)))
			sb.WriteString(fmt.Sprintf("    sales   %s\n", RenderProgress(prog.Sales, barWidth, s)))
			sb.WriteString(fmt.Sprintf("    invoice %s\n", RenderProgress(prog.Invoice, barWidth, s)))
		}
	} else {
		prog := p.store.CalculateUserProgress(p.user.ID)
		sb.WriteString(fmt.Sprintf("  sales   %s\n", RenderProgress(prog.Sales, barWidth, s)))
		sb.WriteString(fmt.Sprintf("  invoice %s\n", RenderProgress(prog.Invoice, barWidth, s)))
	}

	return sb.String()
}
