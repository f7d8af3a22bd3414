package hyperstack

import "strings"

// Regions accepted by the environment endpoints.
const (
	RegionCanada1 = "CANADA-1"
	RegionNorway1 = "NORWAY-1"
)

// Regions returns the fixed set of valid region names.
func Regions() []string {
	return []string{RegionCanada1, RegionNorway1}
}

// maxVMNameLength is the API-imposed limit on virtual machine names.
const maxVMNameLength = 50

// publicKeyPrefixes are the OpenSSH key types the API accepts.
var publicKeyPrefixes = []string{"ssh-rsa", "ssh-ed25519", "ecdsa-sha2-nistp"}

// trimmed is shorthand for strings.TrimSpace.
func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// requireName trims value and fails when nothing remains. All name-class
// fields go through here so they fail and normalize identically.
func requireName(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalidArg(field, "must not be empty")
	}
	return trimmed, nil
}

// requireID validates a path identifier before it is embedded in a URL.
func requireID(field, value string) (string, error) {
	return requireName(field, value)
}

// validateMachineName applies the name-class rules plus the VM length limit.
func validateMachineName(value string) (string, error) {
	name, err := requireName("name", value)
	if err != nil {
		return "", err
	}
	if len(name) > maxVMNameLength {
		return "", invalidArg("name", "must be at most %d characters, got %d", maxVMNameLength, len(name))
	}
	return name, nil
}

// validatePublicKey checks that value looks like an OpenSSH public key.
func validatePublicKey(value string) (string, error) {
	key := strings.TrimSpace(value)
	if key == "" {
		return "", invalidArg("public_key", "must not be empty")
	}
	for _, prefix := range publicKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return key, nil
		}
	}
	return "", invalidArg("public_key", "must start with one of %s", strings.Join(publicKeyPrefixes, ", "))
}

// validateRegion restricts value to the fixed region enumeration.
func validateRegion(value string) (string, error) {
	region := strings.TrimSpace(value)
	for _, valid := range Regions() {
		if region == valid {
			return region, nil
		}
	}
	return "", invalidArg("region", "must be one of %s, got %q", strings.Join(Regions(), ", "), value)
}

// validateCount rejects instance counts below one.
func validateCount(n int) error {
	if n < 1 {
		return invalidArg("count", "must be at least 1, got %d", n)
	}
	return nil
}

// validatePage rejects negative page numbers. A nil page means "not set".
func validatePage(page *int) error {
	if page != nil && *page < 0 {
		return invalidArg("page", "must not be negative, got %d", *page)
	}
	return nil
}

// validatePageSize rejects page sizes below one. A nil size means "not set".
func validatePageSize(size *int) error {
	if size != nil && *size < 1 {
		return invalidArg("page_size", "must be at least 1, got %d", *size)
	}
	return nil
}
