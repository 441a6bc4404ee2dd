package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTTL         = time.Hour
	defaultStateTTL           = 10 * time.Minute
	defaultRole               = "temporary"
	defaultRevokeURL          = "https://oauth2.googleapis.com/revoke"

	// UserStoreMongo selects the MongoDB-backed user directory.
	UserStoreMongo = "mongo"
	// UserStorePostgres selects the PostgreSQL-backed user directory.
	UserStorePostgres = "postgres"
)

// knownRoles mirrors entity.Role values. config cannot import the domain package.
var knownRoles = []string{"admin", "storeowner", "inventoryManager", "driver", "temporary"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Authorization holds the per-route role allowlists.
	Authorization *AuthorizationConfig `json:"authorization" yaml:"authorization"`

	UserStore struct {
		Driver string `json:"driver" yaml:"driver"`
	} `json:"userStore" yaml:"userStore"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// GoogleOAuthConfig holds the credentials used for the authorization-code flow.
type GoogleOAuthConfig struct {
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string      `json:"scopes" yaml:"scopes"`
	RevokeURL    string        `json:"revokeUrl" yaml:"revokeUrl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// AuthConfig defines session issuance settings.
type AuthConfig struct {
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	StateTTL   time.Duration `json:"stateTTL" yaml:"stateTTL"`
	// DefaultRole is assigned to accounts created on first login.
	DefaultRole string `json:"defaultRole" yaml:"defaultRole"`
}

// AuthorizationConfig maps a route name (e.g. "listUsers") to the roles allowed on it.
type AuthorizationConfig struct {
	Routes map[string][]string `json:"routes" yaml:"routes"`
}

// MongoConfig defines the MongoDB connection for the user directory.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	Collection     string        `json:"collection" yaml:"collection"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// RedisConfig defines the Redis connection backing the token store.
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	StatePrefix  string        `json:"statePrefix" yaml:"statePrefix"`
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: AUTH_DEFAULTROLE -> auth.defaultRole (not auth.defaultrole)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional setting that was left empty.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = defaultSessionTTL
	}
	if c.Auth.StateTTL <= 0 {
		c.Auth.StateTTL = defaultStateTTL
	}
	if strings.TrimSpace(c.Auth.DefaultRole) == "" {
		c.Auth.DefaultRole = defaultRole
	}

	if c.GoogleOAuth == nil {
		c.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if c.GoogleOAuth.RevokeURL == "" {
		c.GoogleOAuth.RevokeURL = defaultRevokeURL
	}
	if len(c.GoogleOAuth.Scopes) == 0 {
		c.GoogleOAuth.Scopes = []string{"profile", "email"}
	}

	if c.Authorization == nil {
		c.Authorization = &AuthorizationConfig{}
	}
	if c.Authorization.Routes == nil {
		c.Authorization.Routes = map[string][]string{}
	}
	for route, roles := range DefaultRoutePolicies() {
		if _, ok := c.Authorization.Routes[route]; !ok {
			c.Authorization.Routes[route] = roles
		}
	}

	if c.UserStore.Driver == "" {
		c.UserStore.Driver = UserStoreMongo
	}
}

// DefaultRoutePolicies returns the allowlists used when a route is not configured.
// admin is never listed since it passes every policy.
func DefaultRoutePolicies() map[string][]string {
	return map[string][]string{
		"listUsers":  {"storeowner", "inventoryManager", "driver"},
		"getUser":    {"storeowner", "inventoryManager", "driver", "temporary"},
		"updateUser": {"storeowner", "inventoryManager", "driver", "temporary"},
		"deleteUser": {"storeowner", "inventoryManager", "driver", "temporary"},
	}
}

// Validate reports the first configuration problem that would make the service unsafe to start.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Session) == "" {
		return errors.New("secretKey.session must be provided")
	}

	if !isKnownRole(c.Auth.DefaultRole) {
		return errors.Errorf("auth.defaultRole %q is not a valid role", c.Auth.DefaultRole)
	}

	for route, roles := range c.Authorization.Routes {
		for _, role := range roles {
			if !isKnownRole(role) {
				return errors.Errorf("authorization.routes.%s: %q is not a valid role", route, role)
			}
		}
	}

	switch c.UserStore.Driver {
	case UserStoreMongo:
		if c.Mongo == nil || c.Mongo.URI == "" {
			return errors.New("mongo.uri must be provided for the mongo user store")
		}
	case UserStorePostgres:
		if c.Postgres == nil {
			return errors.New("postgres must be configured for the postgres user store")
		}
	default:
		return errors.Errorf("unknown userStore.driver %q", c.UserStore.Driver)
	}

	return nil
}

func isKnownRole(role string) bool {
	return slices.Contains(knownRoles, role)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
