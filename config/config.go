package config

import "github.com/caarlos0/env/v6"

type Config struct {
    // HTTP listen port
    Port string `env:"PORT" envDefault:"5000"`

    // Runtime mode; the IP policy only blocks private ranges in "production"
    Environment string `env:"APP_ENV" envDefault:"development"`

    // Static key required by the admin blog endpoints
    AdminAPIKey string `env:"ADMIN_API_KEY"`

    // Public site base URL, used for canonical links, sitemap and RSS
    SiteURL string `env:"SITE_URL" envDefault:"https://www.bayshorerealty.com"`

    // Origin host suffix exempted from the IP policy for the content
    // automation integration
    TrustedOriginSuffix string `env:"TRUSTED_ORIGIN_SUFFIX" envDefault:".replit.app"`

    Telegram struct {
        // Bot token for new-lead notifications; empty disables the notifier
        BotToken string `env:"TELEGRAM_BOT_TOKEN"`

        // Chat that receives new-lead notifications
        ChatID string `env:"TELEGRAM_CHAT_ID"`
    }

    Reviews struct {
        // Third-party reviews endpoint; empty serves the fallback payload
        URL string `env:"REVIEWS_API_URL"`

        // Outbound timeout for the reviews call (in seconds)
        TimeoutSeconds int `env:"REVIEWS_TIMEOUT" envDefault:"5"`
    }
}

func LoadConfig() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, err
    }
    return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
    return c.Environment == "production"
}
