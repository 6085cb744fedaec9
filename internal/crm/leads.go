package crm

import (
	"context"

	"leadcrm/internal/types"
)

// AddLead creates a lead on the server and, on success, appends the server's
// version to the cache and re-fetches the assignee's targets. On failure the
// cache is untouched and the error propagates so the form can stay open.
func (s *Store) AddLead(ctx context.Context, lead types.Lead) (types.Lead, error) {
	created, err := s.api.CreateLead(ctx, lead)
	if err != nil {
		s.notifyErr(err)
		return types.Lead{}, err
	}

	s.mu.Lock()
	s.leads = append(s.leads, created)
	s.mu.Unlock()

	s.refreshTargets(ctx, created.AssignedTo)
	s.notify.Notify(LevelSuccess, "Lead added.")
	return created, nil
}

// UpdateLead replaces a lead. Both the previous and the new assignee get
// their targets re-fetched, since revenue may have moved between users.
func (s *Store) UpdateLead(ctx context.Context, lead types.Lead) (types.Lead, error) {
	prevAssignee := ""
	if prev, ok := s.Lead(lead.ID); ok {
		prevAssignee = prev.AssignedTo
	}

	updated, err := s.api.UpdateLead(ctx, lead)
	if err != nil {
		s.notifyErr(err)
		return types.Lead{}, err
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == updated.ID {
			s.leads[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.refreshTargets(ctx, prevAssignee, updated.AssignedTo)
	s.notify.Notify(LevelSuccess, "Lead updated.")
	return updated, nil
}

// DeleteLead removes a lead and re-fetches the former assignee's targets.
func (s *Store) DeleteLead(ctx context.Context, id string) error {
	assignee := ""
	if prev, ok := s.Lead(id); ok {
		assignee = prev.AssignedTo
	}

	if err := s.api.DeleteLead(ctx, id); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	s.leads = removeLeads(s.leads, map[string]bool{id: true})
	s.mu.Unlock()

	s.refreshTargets(ctx, assignee)
	s.notify.Notify(LevelSuccess, "Lead deleted.")
	return nil
}

// BulkDeleteLeads removes a selection in one request and re-fetches targets
// for every user that owned one of the deleted leads.
func (s *Store) BulkDeleteLeads(ctx context.Context, ids []string) error {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	affected := s.assigneesOf(idSet)

	if err := s.api.BulkDeleteLeads(ctx, ids); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	s.leads = removeLeads(s.leads, idSet)
	s.mu.Unlock()

	s.refreshTargets(ctx, affected...)
	s.notify.Notify(LevelSuccess, "Leads deleted.")
	return nil
}

// BulkAssignLeads reassigns a selection to one user. Targets are re-fetched
// for the destination user and for every previous owner, so both sides of
// the move get fresh achieved figures.
func (s *Store) BulkAssignLeads(ctx context.Context, ids []string, userID string) error {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	affected := s.assigneesOf(idSet)

	if err := s.api.BulkAssignLeads(ctx, ids, userID); err != nil {
		s.notifyErr(err)
		return err
	}

	s.mu.Lock()
	for i := range s.leads {
		if idSet[s.leads[i].ID] {
			s.leads[i].AssignedTo = userID
		}
	}
	s.mu.Unlock()

	s.refreshTargets(ctx, append(affected, userID)...)
	s.notify.Notify(LevelSuccess, "Leads assigned.")
	return nil
}

// assigneesOf collects the distinct owners of the given cached leads.
func (s *Store) assigneesOf(idSet map[string]bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, l := range s.leads {
		if idSet[l.ID] && l.AssignedTo != "" && !seen[l.AssignedTo] {
			seen[l.AssignedTo] = true
			out = append(out, l.AssignedTo)
		}
	}
	return out
}

func removeLeads(leads []types.Lead, idSet map[string]bool) []types.Lead {
	out := leads[:0]
	for _, l := range leads {
		if !idSet[l.ID] {
			out = append(out, l)
		}
	}
	return out
}
