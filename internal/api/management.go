package api

import (
	"context"

	"leadcrm/internal/types"
)

func managementPath(t types.ManagementType) string {
	return "/management/" + t.APIPath()
}

// ListManagement returns every record of one reference list.
func (c *Client) ListManagement(ctx context.Context, t types.ManagementType) ([]types.ManagementRecord, error) {
	var records []types.ManagementRecord
	if err := c.get(ctx, managementPath(t), &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Type = t
	}
	return records, nil
}

// CreateManagement adds a reference value. Reference values become global to
// all users the moment the backend accepts them.
func (c *Client) CreateManagement(ctx context.Context, t types.ManagementType, rec types.ManagementRecord) (types.ManagementRecord, error) {
	var out types.ManagementRecord
	if err := c.post(ctx, managementPath(t), rec, &out); err != nil {
		return types.ManagementRecord{}, err
	}
	out.Type = t
	return out, nil
}

// UpdateManagement replaces a reference record.
func (c *Client) UpdateManagement(ctx context.Context, t types.ManagementType, rec types.ManagementRecord) (types.ManagementRecord, error) {
	var out types.ManagementRecord
	if err := c.put(ctx, managementPath(t)+"/"+rec.ID, rec, &out); err != nil {
		return types.ManagementRecord{}, err
	}
	out.Type = t
	return out, nil
}

// DeleteManagement removes a reference record.
func (c *Client) DeleteManagement(ctx context.Context, t types.ManagementType, id string) error {
	return c.delete(ctx, managementPath(t)+"/"+id)
}
