package paykit

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default connection parameters.
const (
	DefaultBaseURL = "https://api.paykit.io"
	DefaultTimeout = 30 * time.Second
	DefaultCasing  = CasingNormalize
)

// Environment variables consulted when no API key is passed explicitly.
const (
	EnvAPIKey    = "PAYKIT_API_KEY"
	EnvOrgAPIKey = "PAYKIT_ORG_API_KEY"
)

// Credential prefixes by scope.
const (
	ProjectKeyPrefix      = "sk_"
	OrganizationKeyPrefix = "org_"
)

// CasingPolicy selects how object keys are treated between the wire and the
// Go types.
type CasingPolicy string

const (
	// CasingPreserve passes keys through exactly as the server sent them.
	CasingPreserve CasingPolicy = "preserve"
	// CasingNormalize rewrites response keys to snake_case and request body
	// keys to camelCase.
	CasingNormalize CasingPolicy = "normalize"
)

// CredentialScope is the level an API key authorizes.
type CredentialScope int

const (
	// ScopeAny accepts any non-empty key.
	ScopeAny CredentialScope = iota
	// ScopeProject is a tenant key limited to one project.
	ScopeProject
	// ScopeOrganization is an organization-admin key spanning projects.
	ScopeOrganization
)

// String implements fmt.Stringer.
func (s CredentialScope) String() string {
	switch s {
	case ScopeAny:
		return "any"
	case ScopeProject:
		return "project"
	case ScopeOrganization:
		return "organization"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// EnvVar returns the environment variable holding keys for the scope.
func (s CredentialScope) EnvVar() string {
	if s == ScopeOrganization {
		return EnvOrgAPIKey
	}

	return EnvAPIKey
}

func (s CredentialScope) prefix() string {
	switch s {
	case ScopeProject:
		return ProjectKeyPrefix
	case ScopeOrganization:
		return OrganizationKeyPrefix
	default:
		return ""
	}
}

func (s CredentialScope) other() CredentialScope {
	if s == ScopeProject {
		return ScopeOrganization
	}

	return ScopeProject
}

// EnvLookup reads one environment variable. os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// Options is the unvalidated input for a client configuration.
//
// # API key precedence
//
// APIKey wins when set. Otherwise the scope's environment variable is read
// through the EnvLookup given to NewConfiguration (PAYKIT_API_KEY for project
// and unscoped clients, PAYKIT_ORG_API_KEY for organization clients). A
// missing key is a configuration error.
//
// # Timeouts and retries
//
// Timeout bounds every call, from sending the request to reading the whole
// response body. Calls are never retried; a failed call is reported once.
type Options struct {
	// APIKey: secret sent as a Bearer token. Project keys start with "sk_",
	// organization-admin keys with "org_".
	APIKey string
	// BaseURL: API origin, defaults to DefaultBaseURL. A trailing slash is
	// trimmed and "https://" is added if no scheme is present.
	BaseURL string
	// Timeout: per-call deadline, defaults to DefaultTimeout.
	Timeout time.Duration
	// Casing: key casing policy, defaults to DefaultCasing. Under
	// CasingNormalize every object key is rewritten in both directions,
	// Metadata keys included: "order_id" is sent as "orderId" and read back
	// as "order_id". Use CasingPreserve to store metadata keys verbatim.
	Casing CasingPolicy
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// HTTPClient: optional transport. Defaults to a pooled client.
	HTTPClient *http.Client
	// Interceptors: optional request/response hooks run around every call.
	Interceptors *InterceptorChain
}

// Configuration holds validated connection parameters. It is immutable and
// safe to share between goroutines.
type Configuration struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	casing  CasingPolicy
	scope   CredentialScope
}

// APIKey returns the resolved credential.
func (c *Configuration) APIKey() string { return c.apiKey }

// BaseURL returns the normalized API origin.
func (c *Configuration) BaseURL() string { return c.baseURL }

// Timeout returns the per-call deadline.
func (c *Configuration) Timeout() time.Duration { return c.timeout }

// Casing returns the casing policy.
func (c *Configuration) Casing() CasingPolicy { return c.casing }

// Scope returns the credential scope the configuration was validated for.
func (c *Configuration) Scope() CredentialScope { return c.scope }

// ResolveCredential picks the API key: the explicit value first, then the
// scope's environment variable read once through lookup. It fails when
// neither yields a non-blank key.
func ResolveCredential(explicit string, scope CredentialScope, lookup EnvLookup) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}

	if lookup != nil {
		if value, ok := lookup(scope.EnvVar()); ok {
			if key := strings.TrimSpace(value); key != "" {
				return key, nil
			}
		}
	}

	return "", &ConfigurationError{
		Field: "APIKey",
		Err:   fmt.Errorf("%w: pass one explicitly or set %s", ErrCredentialRequired, scope.EnvVar()),
	}
}

// ValidateCredential checks that key carries the prefix required by scope.
func ValidateCredential(key string, scope CredentialScope) error {
	switch scope {
	case ScopeAny:
	case ScopeProject, ScopeOrganization:
		if strings.HasPrefix(key, scope.prefix()) {
			return nil
		}

		other := scope.other()
		if strings.HasPrefix(key, other.prefix()) {
			return &ConfigurationError{
				Field: "APIKey",
				Err:   fmt.Errorf("%w: %s key used for a %s client", ErrCredentialScopeMismatch, other, scope),
			}
		}

		return &ConfigurationError{
			Field: "APIKey",
			Err:   fmt.Errorf("%w: %s keys start with %q", ErrCredentialPrefix, scope, scope.prefix()),
		}
	default:
		return &ConfigurationError{Field: "Scope", Err: fmt.Errorf("%w: %d", ErrInvalidScope, int(scope))}
	}

	return nil
}

// NormalizeBaseURL trims a trailing slash, adds "https://" when no scheme is
// present and checks that the result is an absolute http(s) URL.
func NormalizeBaseURL(raw string) (string, error) {
	endpoint := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if endpoint == "" {
		return DefaultBaseURL, nil
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", &ConfigurationError{Field: "BaseURL", Err: fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)}
	}

	if parsed.Host == "" {
		return "", &ConfigurationError{Field: "BaseURL", Err: fmt.Errorf("%w: no host in %q", ErrInvalidBaseURL, raw)}
	}

	return endpoint, nil
}

// NewConfiguration validates opts for a client of the given scope. It does
// no I/O. Every failure is a *ConfigurationError.
func NewConfiguration(scope CredentialScope, opts *Options, lookup EnvLookup) (*Configuration, error) {
	if opts == nil {
		return nil, &ConfigurationError{Field: "Options", Err: ErrOptionsRequired}
	}

	apiKey, err := ResolveCredential(opts.APIKey, scope, lookup)
	if err != nil {
		return nil, err
	}

	err = ValidateCredential(apiKey, scope)
	if err != nil {
		return nil, err
	}

	baseURL, err := NormalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout < 0 {
		return nil, &ConfigurationError{Field: "Timeout", Err: fmt.Errorf("%w: %s", ErrInvalidTimeout, timeout)}
	}

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	casing, err := ParseCasingPolicy(string(opts.Casing))
	if err != nil {
		return nil, err
	}

	return &Configuration{
		apiKey:  apiKey,
		baseURL: baseURL,
		timeout: timeout,
		casing:  casing,
		scope:   scope,
	}, nil
}

// ParseCasingPolicy parses "preserve" or "normalize". An empty value yields
// DefaultCasing.
func ParseCasingPolicy(value string) (CasingPolicy, error) {
	switch CasingPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return DefaultCasing, nil
	case CasingPreserve:
		return CasingPreserve, nil
	case CasingNormalize:
		return CasingNormalize, nil
	default:
		return "", &ConfigurationError{Field: "Casing", Err: fmt.Errorf("%w: %q", ErrInvalidCasingPolicy, value)}
	}
}
