package config

import (
	"github.com/glebarez/sqlite"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mealhub-api/models"
)

type App struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`
	DBPath  string `envconfig:"DB_PATH" default:"mealhub.db"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"mealhub_super_secret_2024"`

	StripeSecretKey   string `envconfig:"STRIPE_SECRET_KEY"`
	PaymentSuccessURL string `envconfig:"PAYMENT_SUCCESS_URL" default:"http://localhost:5173/payment-success"`
	PaymentCancelURL  string `envconfig:"PAYMENT_CANCEL_URL" default:"http://localhost:5173/payment-cancelled"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// OpenDB connects and migrates the store. The handle is owned by main and
// injected everywhere it is needed; there is no package-level connection.
func OpenDB(cfg App) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Review{},
		&models.Favorite{},
		&models.Order{},
		&models.RoleRequest{},
		&models.Payment{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
