package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// JWT (read by pkg/auth from the environment; required here so the
	// process fails fast when it is missing)
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// RabbitMQ for publishing booking events
	RabbitURL       string `envconfig:"RABBIT_URL" required:"true"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`

	// RabbitMQ for consuming payment events
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"payment.exchange"`
	PaymentQueue    string `envconfig:"PAYMENT_QUEUE" default:"booking.payment.q"`
}

func Load() (App, error) {
	// .env is optional; deployments normally set the environment directly.
	_ = godotenv.Load()
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
