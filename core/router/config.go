package router

// Config holds connection settings for one ASUS router.
type Config struct {
	// Host is the router's address, without scheme.
	Host string `mapstructure:"host" default:"192.168.1.1"`
	// Username is the web UI login user.
	Username string `mapstructure:"username" default:"admin"`
	// Password is the web UI login password.
	Password string `mapstructure:"password" default:""`
	// UseSSL selects HTTPS. Routers ship self-signed certificates, so
	// certificate verification is skipped when this is on.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Valid reports whether the config carries enough to attempt a login.
func (c Config) Valid() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}
