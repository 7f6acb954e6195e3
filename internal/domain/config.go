package domain

import (
	"fmt"
	"strings"
)

// ConfigKind enumerates the closed set of configuration key variants
type ConfigKind int

const (
	ConfigUser ConfigKind = iota
	ConfigOnce
	ConfigLocal
	ConfigDefault
	ConfigConventional
)

// Reserved key names
const (
	KeyConventional = "conventional"
	KeyDefault      = "default"
	KeyLocal        = "local"
	KeyOnce         = "once"
)

// ConfigKey identifies a NamedConfiguration. Only ConfigUser carries a name.
type ConfigKey struct {
	Kind ConfigKind
	Name string
}

var (
	OnceKey         = ConfigKey{Kind: ConfigOnce}
	LocalKey        = ConfigKey{Kind: ConfigLocal}
	DefaultKey      = ConfigKey{Kind: ConfigDefault}
	ConventionalKey = ConfigKey{Kind: ConfigConventional}
)

// UserKey builds a user registered key
func UserKey(name string) ConfigKey {
	return ConfigKey{Kind: ConfigUser, Name: strings.TrimSpace(name)}
}

// ParseConfigKey maps a stored or user supplied name onto its key variant.
// Reserved names always map to their system variant.
func ParseConfigKey(value string) ConfigKey {
	switch strings.TrimSpace(value) {
	case KeyOnce:
		return OnceKey
	case KeyLocal:
		return LocalKey
	case KeyDefault:
		return DefaultKey
	case KeyConventional:
		return ConventionalKey
	default:
		return UserKey(value)
	}
}

// String returns the persisted form of the key
func (k ConfigKey) String() string {
	switch k.Kind {
	case ConfigOnce:
		return KeyOnce
	case ConfigLocal:
		return KeyLocal
	case ConfigDefault:
		return KeyDefault
	case ConfigConventional:
		return KeyConventional
	default:
		return k.Name
	}
}

// IsOverridable reports whether a user action may overwrite the key
func (k ConfigKey) IsOverridable() bool {
	return k.Kind == ConfigUser
}

// ConfigStatus is the activation state of a NamedConfiguration
type ConfigStatus string

const (
	ConfigActive   ConfigStatus = "ACTIVE"
	ConfigDisabled ConfigStatus = "DISABLED"
)

// ParseConfigStatus converts a stored status string
func ParseConfigStatus(value string) (ConfigStatus, error) {
	switch ConfigStatus(value) {
	case ConfigActive, ConfigDisabled:
		return ConfigStatus(value), nil
	default:
		return "", fmt.Errorf("'%s' is not a valid config status", value)
	}
}

// NamedConfiguration points a key at a template definition file
type NamedConfiguration struct {
	Key    ConfigKey
	Path   string
	Status ConfigStatus
}

// IsActive reports whether the configuration is the active one
func (c NamedConfiguration) IsActive() bool {
	return c.Status == ConfigActive
}
