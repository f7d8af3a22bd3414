package hyperstack

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// EnvironmentSpec describes a new environment.
type EnvironmentSpec struct {
	// Name for the environment.
	Name string

	// Region where the environment will be created. Must be one of
	// the values returned by Regions.
	Region string
}

// ListOptions carries the optional filters accepted by list endpoints.
// Nil page fields are omitted from the request entirely.
type ListOptions struct {
	// Search filters by name, ID, or region.
	Search string

	// Page is the page number to retrieve (zero-based).
	Page *int

	// PageSize is the number of results per page.
	PageSize *int
}

func (o ListOptions) validate() error {
	if err := validatePage(o.Page); err != nil {
		return err
	}
	return validatePageSize(o.PageSize)
}

// query builds the list query parameters. Matching the API's expectations,
// only non-empty and non-zero values are included.
func (o ListOptions) query() url.Values {
	q := url.Values{}
	if search := trimmed(o.Search); search != "" {
		q.Set("search", search)
	}
	if o.Page != nil && *o.Page > 0 {
		q.Set("page", strconv.Itoa(*o.Page))
	}
	if o.PageSize != nil && *o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(*o.PageSize))
	}
	return q
}

type environmentRequest struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

type environmentUpdateRequest struct {
	Name string `json:"name"`
}

// CreateEnvironment creates a new environment in the given region.
func (c *Client) CreateEnvironment(ctx context.Context, spec EnvironmentSpec) (any, error) {
	name, err := requireName("name", spec.Name)
	if err != nil {
		return nil, err
	}
	region, err := validateRegion(spec.Region)
	if err != nil {
		return nil, err
	}

	body := environmentRequest{Name: name, Region: region}
	return c.do(ctx, http.MethodPost, "/core/environments", nil, body)
}

// GetEnvironment fetches a single environment by ID.
func (c *Client) GetEnvironment(ctx context.Context, environmentID string) (any, error) {
	id, err := requireID("environment_id", environmentID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, "/core/environments/"+url.PathEscape(id), nil, nil)
}

// ListEnvironments fetches environments matching the given options.
func (c *Client) ListEnvironments(ctx context.Context, opts ListOptions) (any, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, "/core/environments", opts.query(), nil)
}

// UpdateEnvironment renames an existing environment.
func (c *Client) UpdateEnvironment(ctx context.Context, environmentID, newName string) (any, error) {
	id, err := requireID("environment_id", environmentID)
	if err != nil {
		return nil, err
	}
	name, err := requireName("name", newName)
	if err != nil {
		return nil, err
	}

	body := environmentUpdateRequest{Name: name}
	return c.do(ctx, http.MethodPut, "/core/environments/"+url.PathEscape(id), nil, body)
}

// DeleteEnvironment permanently deletes an environment.
func (c *Client) DeleteEnvironment(ctx context.Context, environmentID string) (any, error) {
	id, err := requireID("environment_id", environmentID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodDelete, "/core/environments/"+url.PathEscape(id), nil, nil)
}
