package config

func loadProductionConfig(cfg *Config) {
	cfg.Environment = "production"
	cfg.ServerHost = "0.0.0.0"
}
