package envconfig

import "time"

type envDTO struct {
	AccessToken string        `env:"WEBEX_ACCESS_TOKEN,required,notEmpty"`
	HTTPTimeout time.Duration `env:"WEBEX_HTTP_TIMEOUT" envDefault:"30s"`
	Debug       bool          `env:"WEBEX_DEBUG" envDefault:"false"`
}
