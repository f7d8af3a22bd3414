package hyperstack

import (
	"context"
	"net/http"
)

// KeypairSpec describes a new SSH keypair.
type KeypairSpec struct {
	// Name for the keypair.
	Name string

	// EnvironmentName is the environment the keypair belongs to.
	EnvironmentName string

	// PublicKey is an SSH public key in OpenSSH format.
	PublicKey string
}

type keypairRequest struct {
	Name            string `json:"name"`
	EnvironmentName string `json:"environment_name"`
	PublicKey       string `json:"public_key"`
}

// CreateKeypair registers an SSH public key in an environment.
func (c *Client) CreateKeypair(ctx context.Context, spec KeypairSpec) (any, error) {
	name, err := requireName("name", spec.Name)
	if err != nil {
		return nil, err
	}
	env, err := requireName("environment_name", spec.EnvironmentName)
	if err != nil {
		return nil, err
	}
	key, err := validatePublicKey(spec.PublicKey)
	if err != nil {
		return nil, err
	}

	body := keypairRequest{Name: name, EnvironmentName: env, PublicKey: key}
	return c.do(ctx, http.MethodPost, "/core/keypairs", nil, body)
}
