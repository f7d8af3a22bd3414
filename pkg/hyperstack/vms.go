package hyperstack

import (
	"context"
	"net/http"
	"net/url"
)

// VirtualMachineSpec describes one or more new virtual machines.
type VirtualMachineSpec struct {
	// Name for the virtual machine (max 50 characters).
	Name string

	// EnvironmentName is the environment to create the machine in.
	EnvironmentName string

	// ImageName is the system image to boot from.
	ImageName string

	// FlavorName selects the instance type.
	FlavorName string

	// KeyName is the keypair installed on the machine.
	KeyName string

	// Count is the number of instances to create. Must be at least 1.
	Count int

	// AssignFloatingIP requests a public floating IP.
	AssignFloatingIP bool

	// CreateBootableVolume backs the machine with a bootable volume.
	CreateBootableVolume bool

	// UserData is optional cloud-init user data.
	UserData string
}

// VMListOptions carries the optional filters for ListVirtualMachines.
type VMListOptions struct {
	// Search filters by machine name or ID.
	Search string

	// Environment filters by environment name or ID.
	Environment string

	// Page is the page number to retrieve (zero-based).
	Page *int

	// PageSize is the number of results per page.
	PageSize *int
}

func (o VMListOptions) validate() error {
	if err := validatePage(o.Page); err != nil {
		return err
	}
	return validatePageSize(o.PageSize)
}

func (o VMListOptions) query() url.Values {
	q := ListOptions{Search: o.Search, Page: o.Page, PageSize: o.PageSize}.query()
	if env := trimmed(o.Environment); env != "" {
		q.Set("environment", env)
	}
	return q
}

type vmRequest struct {
	Name                 string `json:"name"`
	EnvironmentName      string `json:"environment_name"`
	ImageName            string `json:"image_name"`
	FlavorName           string `json:"flavor_name"`
	KeyName              string `json:"key_name"`
	Count                int    `json:"count"`
	AssignFloatingIP     bool   `json:"assign_floating_ip"`
	CreateBootableVolume bool   `json:"create_bootable_volume"`
	UserData             string `json:"user_data"`
}

// CreateVirtualMachine provisions count virtual machines from the spec.
func (c *Client) CreateVirtualMachine(ctx context.Context, spec VirtualMachineSpec) (any, error) {
	name, err := validateMachineName(spec.Name)
	if err != nil {
		return nil, err
	}
	env, err := requireName("environment_name", spec.EnvironmentName)
	if err != nil {
		return nil, err
	}
	image, err := requireName("image_name", spec.ImageName)
	if err != nil {
		return nil, err
	}
	flavor, err := requireName("flavor_name", spec.FlavorName)
	if err != nil {
		return nil, err
	}
	key, err := requireName("key_name", spec.KeyName)
	if err != nil {
		return nil, err
	}
	if err := validateCount(spec.Count); err != nil {
		return nil, err
	}

	body := vmRequest{
		Name:                 name,
		EnvironmentName:      env,
		ImageName:            image,
		FlavorName:           flavor,
		KeyName:              key,
		Count:                spec.Count,
		AssignFloatingIP:     spec.AssignFloatingIP,
		CreateBootableVolume: spec.CreateBootableVolume,
		UserData:             spec.UserData,
	}
	return c.do(ctx, http.MethodPost, "/core/virtual-machines", nil, body)
}

// ListVirtualMachines fetches virtual machines matching the given options.
func (c *Client) ListVirtualMachines(ctx context.Context, opts VMListOptions) (any, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, "/core/virtual-machines", opts.query(), nil)
}

// GetVirtualMachine fetches a single virtual machine by ID.
func (c *Client) GetVirtualMachine(ctx context.Context, vmID string) (any, error) {
	id, err := requireID("vm_id", vmID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, "/core/virtual-machines/"+url.PathEscape(id), nil, nil)
}

// vmAction validates the ID and issues a GET to the named action endpoint.
// All lifecycle actions share this path shape.
func (c *Client) vmAction(ctx context.Context, vmID, action string) (any, error) {
	id, err := requireID("vm_id", vmID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, "/core/virtual-machines/"+url.PathEscape(id)+"/"+action, nil, nil)
}

// StartVirtualMachine powers on a stopped virtual machine.
func (c *Client) StartVirtualMachine(ctx context.Context, vmID string) (any, error) {
	return c.vmAction(ctx, vmID, "start")
}

// StopVirtualMachine shuts down a virtual machine.
func (c *Client) StopVirtualMachine(ctx context.Context, vmID string) (any, error) {
	return c.vmAction(ctx, vmID, "stop")
}

// HardRebootVirtualMachine forcibly reboots a virtual machine.
func (c *Client) HardRebootVirtualMachine(ctx context.Context, vmID string) (any, error) {
	return c.vmAction(ctx, vmID, "hard-reboot")
}

// HibernateVirtualMachine hibernates a running virtual machine.
func (c *Client) HibernateVirtualMachine(ctx context.Context, vmID string) (any, error) {
	return c.vmAction(ctx, vmID, "hibernate")
}

// RestoreVirtualMachine restores a virtual machine from hibernation.
func (c *Client) RestoreVirtualMachine(ctx context.Context, vmID string) (any, error) {
	return c.vmAction(ctx, vmID, "hibernate-restore")
}

// DeleteVirtualMachine permanently deletes a virtual machine.
func (c *Client) DeleteVirtualMachine(ctx context.Context, vmID string) (any, error) {
	id, err := requireID("vm_id", vmID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodDelete, "/core/virtual-machines/"+url.PathEscape(id), nil, nil)
}
