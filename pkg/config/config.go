package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"720"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// RabbitMQ
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	NotifyQueue         string `envconfig:"NOTIFY_QUEUE" default:"mpc.notify.q"`

	// Scheduling
	CourtCount   int   `envconfig:"COURT_COUNT" default:"2"`
	HourlyRate   int64 `envconfig:"HOURLY_RATE" default:"500"`
	PerGuestRate int64 `envconfig:"PER_GUEST_RATE" default:"200"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
