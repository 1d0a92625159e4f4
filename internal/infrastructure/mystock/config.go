package mystock

import "errors"

// Service endpoints of the MyStock interface. The production endpoint is not
// published with the integration package and has to be supplied by the
// deployment configuration; Validate refuses an empty endpoint instead of
// letting requests go out with a broken URL.
const (
	// TestEndpoint is the Authentica test environment
	TestEndpoint = "https://authenticatest.wmsint.mystock.cz:9351/myStockInterfaceAuthenticaTest/V1/"
	// ProductionEndpoint is filled in per deployment
	ProductionEndpoint = ""
)

// defaultTimeoutSeconds is the HTTP timeout applied when none is configured
const defaultTimeoutSeconds = 30

// Errors for MyStock configuration
var (
	ErrConfigMissingUsername = errors.New("mystock: username is required")
	ErrConfigMissingPassword = errors.New("mystock: password is required")
	ErrConfigMissingEndpoint = errors.New("mystock: endpoint is not configured")
)

// Config holds configuration for the MyStock WMS interface
type Config struct {
	// Username for HTTP basic authentication
	Username string
	// Password for HTTP basic authentication
	Password string
	// Endpoint is the versioned service root; when empty it is resolved from
	// TestMode
	Endpoint string
	// TestMode selects the test environment when no explicit endpoint is set
	TestMode bool
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewConfig creates a production configuration. The production endpoint is
// deployment-specific, so it must be passed in.
func NewConfig(username, password, endpoint string) *Config {
	return &Config{
		Username:       username,
		Password:       password,
		Endpoint:       endpoint,
		TestMode:       false,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// NewTestConfig creates a configuration pointing at the test environment
func NewTestConfig(username, password string) *Config {
	return &Config{
		Username:       username,
		Password:       password,
		Endpoint:       TestEndpoint,
		TestMode:       true,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// Validate checks credentials, resolves the endpoint from TestMode when none
// is set and applies the timeout default
func (c *Config) Validate() error {
	if c.Username == "" {
		return ErrConfigMissingUsername
	}
	if c.Password == "" {
		return ErrConfigMissingPassword
	}
	if c.Endpoint == "" {
		if c.TestMode {
			c.Endpoint = TestEndpoint
		} else {
			c.Endpoint = ProductionEndpoint
		}
	}
	if c.Endpoint == "" {
		return ErrConfigMissingEndpoint
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}
