package config

import (
	"fmt"

	"oficina_xpto/internal/usecase"

	"github.com/caarlos0/env/v6"
	"github.com/shopspring/decimal"
)

const (
	AppModeProduction = "PROD"
	AppModeDevelop    = "DEV"
)

type Config struct {
	App      App
	DynamoDB DynamoDB
	Redis    Redis
	Business Business
}

type App struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"APP_MODE" envDefault:"DEV"`
}

// DynamoDB keeps the local-friendly defaults of docker-compose setups; the
// SDK requires credentials even when the local emulator ignores them.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`

	CustomersTable     string `env:"DYNAMODB_CUSTOMERS_TABLE" envDefault:"customers"`
	ServiceOrdersTable string `env:"DYNAMODB_SERVICE_ORDERS_TABLE" envDefault:"service_orders"`
	BudgetsTable       string `env:"DYNAMODB_BUDGETS_TABLE" envDefault:"budgets"`
	CatalogTable       string `env:"DYNAMODB_CATALOG_TABLE" envDefault:"catalog"`
	MechanicsTable     string `env:"DYNAMODB_MECHANICS_TABLE" envDefault:"mechanics"`
	CountersTable      string `env:"DYNAMODB_COUNTERS_TABLE" envDefault:"counters"`
}

// Redis is optional; an empty address disables event publishing over Redis.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Channel  string `env:"REDIS_EVENTS_CHANNEL" envDefault:"oficina.events"`
}

type Business struct {
	TaxRate             string `env:"BUDGET_TAX_RATE" envDefault:"0.10"`
	DefaultValidDays    int    `env:"BUDGET_DEFAULT_VALID_DAYS" envDefault:"15"`
	MinValidDays        int    `env:"BUDGET_MIN_VALID_DAYS" envDefault:"1"`
	MaxValidDays        int    `env:"BUDGET_MAX_VALID_DAYS" envDefault:"90"`
	MinItems            int    `env:"BUDGET_MIN_ITEMS" envDefault:"1"`
	MaxItems            int    `env:"BUDGET_MAX_ITEMS" envDefault:"50"`
	WorkingHoursPerDay  int    `env:"WORKING_HOURS_PER_DAY" envDefault:"8"`
	OrderNumberTemplate string `env:"ORDER_NUMBER_TEMPLATE" envDefault:"OS-{YYYY}{MM}{DD}-{SEQ6}"`
	DiscountPercentage  string `env:"PRICING_DISCOUNT_PERCENTAGE" envDefault:"0"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg.App); err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	if err := env.Parse(&cfg.DynamoDB); err != nil {
		return nil, fmt.Errorf("error parsing dynamodb config: %w", err)
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	if err := env.Parse(&cfg.Business); err != nil {
		return nil, fmt.Errorf("error parsing business config: %w", err)
	}
	if _, err := cfg.BudgetPolicy(); err != nil {
		return nil, err
	}
	if _, err := cfg.ServiceOrderPolicy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) BudgetPolicy() (usecase.BudgetPolicy, error) {
	rate, err := decimal.NewFromString(c.Business.TaxRate)
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return usecase.BudgetPolicy{}, fmt.Errorf("invalid BUDGET_TAX_RATE %q", c.Business.TaxRate)
	}
	b := c.Business
	if b.MinValidDays < 1 || b.MaxValidDays < b.MinValidDays || b.DefaultValidDays < b.MinValidDays || b.DefaultValidDays > b.MaxValidDays {
		return usecase.BudgetPolicy{}, fmt.Errorf("invalid budget validity bounds: default %d, range [%d, %d]", b.DefaultValidDays, b.MinValidDays, b.MaxValidDays)
	}
	if b.MinItems < 1 || b.MaxItems < b.MinItems {
		return usecase.BudgetPolicy{}, fmt.Errorf("invalid budget item bounds: [%d, %d]", b.MinItems, b.MaxItems)
	}
	return usecase.BudgetPolicy{
		TaxRate:          rate,
		DefaultValidDays: b.DefaultValidDays,
		MinValidDays:     b.MinValidDays,
		MaxValidDays:     b.MaxValidDays,
		MinItems:         b.MinItems,
		MaxItems:         b.MaxItems,
	}, nil
}

// ServiceOrderPolicy prices orders with the same tax rate budgets use,
// expressed as a percentage.
func (c *Config) ServiceOrderPolicy() (usecase.ServiceOrderPolicy, error) {
	rate, err := decimal.NewFromString(c.Business.TaxRate)
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return usecase.ServiceOrderPolicy{}, fmt.Errorf("invalid BUDGET_TAX_RATE %q", c.Business.TaxRate)
	}
	discount, err := decimal.NewFromString(c.Business.DiscountPercentage)
	if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return usecase.ServiceOrderPolicy{}, fmt.Errorf("invalid PRICING_DISCOUNT_PERCENTAGE %q", c.Business.DiscountPercentage)
	}
	if c.Business.WorkingHoursPerDay <= 0 || c.Business.WorkingHoursPerDay > 24 {
		return usecase.ServiceOrderPolicy{}, fmt.Errorf("invalid WORKING_HOURS_PER_DAY %d", c.Business.WorkingHoursPerDay)
	}
	return usecase.ServiceOrderPolicy{
		OrderNumberTemplate: c.Business.OrderNumberTemplate,
		WorkingHoursPerDay:  c.Business.WorkingHoursPerDay,
		DiscountPercentage:  discount,
		TaxPercentage:       rate.Mul(decimal.NewFromInt(100)),
	}, nil
}
