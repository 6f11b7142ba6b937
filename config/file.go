package config

import "time"

// fileConfig is the YAML shape of the optional config file. Every field is a
// pointer or string so that only the options actually present in the file
// override the defaults. Durations are written as Go duration strings
// ("500ms", "30s").
type fileConfig struct {
	Web struct {
		BaseURL  string `yaml:"base_url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"web"`
	PostsAPI fileAPIConfig `yaml:"posts_api"`
	UsersAPI fileAPIConfig `yaml:"users_api"`
	HTTP     struct {
		ConnectTimeout       string `yaml:"connect_timeout"`
		ReadTimeout          string `yaml:"read_timeout"`
		MaxRetries           *int   `yaml:"max_retries"`
		BaseDelay            string `yaml:"base_delay"`
		MaxDelay             string `yaml:"max_delay"`
		RequestGap           string `yaml:"request_gap"`
		MaxRequestsPerWindow *int   `yaml:"max_requests_per_window"`
		Window               string `yaml:"window"`
	} `yaml:"http"`
	Run struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"run"`
}

type fileAPIConfig struct {
	BaseURL string            `yaml:"base_url"`
	Headers map[string]string `yaml:"headers"`
}

func (f fileConfig) apply(cfg *Config) error {
	setString(&cfg.Web.BaseURL, f.Web.BaseURL)
	setString(&cfg.Web.Username, f.Web.Username)
	setString(&cfg.Web.Password, f.Web.Password)
	f.PostsAPI.apply(&cfg.PostsAPI)
	f.UsersAPI.apply(&cfg.UsersAPI)

	if f.HTTP.MaxRetries != nil {
		cfg.HTTP.MaxRetries = *f.HTTP.MaxRetries
	}
	if f.HTTP.MaxRequestsPerWindow != nil {
		cfg.HTTP.MaxRequestsPerWindow = *f.HTTP.MaxRequestsPerWindow
	}
	for _, d := range []struct {
		field string
		raw   string
		dest  *time.Duration
	}{
		{"http.connect_timeout", f.HTTP.ConnectTimeout, &cfg.HTTP.ConnectTimeout},
		{"http.read_timeout", f.HTTP.ReadTimeout, &cfg.HTTP.ReadTimeout},
		{"http.base_delay", f.HTTP.BaseDelay, &cfg.HTTP.BaseDelay},
		{"http.max_delay", f.HTTP.MaxDelay, &cfg.HTTP.MaxDelay},
		{"http.request_gap", f.HTTP.RequestGap, &cfg.HTTP.RequestGap},
		{"http.window", f.HTTP.Window, &cfg.HTTP.Window},
		{"run.timeout", f.Run.Timeout, &cfg.Run.Timeout},
	} {
		if err := setDuration(d.dest, d.field, d.raw); err != nil {
			return err
		}
	}
	return nil
}

func (f fileAPIConfig) apply(cfg *APIConfig) {
	setString(&cfg.BaseURL, f.BaseURL)
	for name, value := range f.Headers {
		cfg.Headers[name] = value
	}
}

func setString(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}

func setDuration(dest *time.Duration, field, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return &ConfigError{Field: field, Reason: err.Error()}
	}
	*dest = d
	return nil
}
