package api

import (
	"context"

	"leadcrm/internal/types"
)

// ListLeads returns the role-scoped lead list. The server applies the role
// filter; sales callers only ever see their own leads.
func (c *Client) ListLeads(ctx context.Context) ([]types.Lead, error) {
	var wires []leadWire
	if err := c.get(ctx, "/leads", &wires); err != nil {
		return nil, err
	}
	leads := make([]types.Lead, len(wires))
	for i, w := range wires {
		leads[i] = leadFromWire(w)
	}
	return leads, nil
}

// CreateLead creates a lead and returns the server's version of it.
func (c *Client) CreateLead(ctx context.Context, lead types.Lead) (types.Lead, error) {
	var w leadWire
	if err := c.post(ctx, "/leads", leadToWire(lead), &w); err != nil {
		return types.Lead{}, err
	}
	return leadFromWire(w), nil
}

// UpdateLead replaces the lead identified by lead.ID.
func (c *Client) UpdateLead(ctx context.Context, lead types.Lead) (types.Lead, error) {
	var w leadWire
	if err := c.put(ctx, "/leads/"+lead.ID, leadToWire(lead), &w); err != nil {
		return types.Lead{}, err
	}
	return leadFromWire(w), nil
}

// DeleteLead removes a lead permanently.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.delete(ctx, "/leads/"+id)
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteLeads removes a multi-selected set of leads in one request.
func (c *Client) BulkDeleteLeads(ctx context.Context, ids []string) error {
	return c.post(ctx, "/leads/bulk-delete", bulkDeleteRequest{IDs: ids}, nil)
}

type bulkAssignRequest struct {
	IDs        []string `json:"ids"`
	AssignedTo string   `json:"assignedTo"`
}

// BulkAssignLeads reassigns a set of leads to one sales user.
func (c *Client) BulkAssignLeads(ctx context.Context, ids []string, userID string) error {
	return c.post(ctx, "/leads/bulk-assign", bulkAssignRequest{IDs: ids, AssignedTo: userID}, nil)
}
