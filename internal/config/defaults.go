package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Store.TimeoutSeconds == 0 {
		cfg.Store.TimeoutSeconds = 15
	}
	if cfg.Search.BatchSize == 0 {
		cfg.Search.BatchSize = 10
	}
	if cfg.Search.IDScanLimit == 0 {
		cfg.Search.IDScanLimit = 10
	}
}
