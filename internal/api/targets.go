package api

import (
	"context"

	"leadcrm/internal/types"
)

// ListTargets returns target records for every sales user. Admin only.
func (c *Client) ListTargets(ctx context.Context) ([]types.UserTargets, error) {
	var targets []types.UserTargets
	if err := c.get(ctx, "/targets", &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// GetTargets returns one user's target record, achieved figures included.
func (c *Client) GetTargets(ctx context.Context, userID string) (types.UserTargets, error) {
	var t types.UserTargets
	if err := c.get(ctx, "/targets/"+userID, &t); err != nil {
		return types.UserTargets{}, err
	}
	if t.UserID == "" {
		t.UserID = userID
	}
	return t, nil
}

type putTargetsRequest struct {
	SalesTarget   float64 `json:"salesTarget"`
	InvoiceTarget float64 `json:"invoiceTarget"`
	Period        string  `json:"period"`
}

// PutTargets creates or updates a user's monthly targets. The period is fixed
// to "monthly"; the server echoes achieved values back (zero when absent).
func (c *Client) PutTargets(ctx context.Context, userID string, salesTarget, invoiceTarget float64) (types.UserTargets, error) {
	body := putTargetsRequest{SalesTarget: salesTarget, InvoiceTarget: invoiceTarget, Period: "monthly"}
	var t types.UserTargets
	if err := c.put(ctx, "/targets/"+userID, body, &t); err != nil {
		return types.UserTargets{}, err
	}
	if t.UserID == "" {
		t.UserID = userID
	}
	return t, nil
}

// DeleteTargets clears a user's target record. Part of the client contract
// even though no page exercises it yet.
func (c *Client) DeleteTargets(ctx context.Context, userID string) error {
	return c.delete(ctx, "/targets/"+userID)
}
