package core

import (
	"encoding/json"
	"fmt"
)

// Features switches whole event slices on or off: the types, their
// registration and the bridge callbacks that raise them.
type Features struct {
	Enabled bool `json:"enabled"`
	ADC     bool `json:"adc"`
	CAN     bool `json:"can"`
	I2C     bool `json:"i2c"`
	SPI     bool `json:"spi"`
	UART    bool `json:"uart"`
	RTC     bool `json:"rtc"`
	Tim     bool `json:"tim"`
	SAI     bool `json:"sai"`
}

// AllFeatures enables every event slice.
func AllFeatures() Features {
	return Features{
		Enabled: true,
		ADC:     true,
		CAN:     true,
		I2C:     true,
		SPI:     true,
		UART:    true,
		RTC:     true,
		Tim:     true,
		SAI:     true,
	}
}

// Allows reports whether events of category c are enabled.
func (f Features) Allows(c EventCategory) bool {
	if !f.Enabled {
		return false
	}
	switch c {
	case CategoryExternal, CategoryUserEvent, CategoryData:
		return true
	case CategoryADC:
		return f.ADC
	case CategoryCAN:
		return f.CAN
	case CategoryI2C:
		return f.I2C
	case CategorySPI:
		return f.SPI
	case CategoryUART:
		return f.UART
	case CategoryRTC:
		return f.RTC
	case CategoryTim:
		return f.Tim
	case CategorySAI:
		return f.SAI
	}
	return false
}

// AllowsType reports whether events of type t are enabled.
func (f Features) AllowsType(t EventType) bool {
	return t.Valid() && f.Allows(CategoryOf(t))
}

// Config is the application configuration.
type Config struct {
	LogLevel string    `json:"log_level"`
	Events   *Features `json:"events,omitempty"`
}

// DefaultConfig enables every feature and logs at info.
func DefaultConfig() *Config {
	f := AllFeatures()
	return &Config{
		LogLevel: "info",
		Events:   &f,
	}
}

// LoadConfig parses a JSON configuration over DefaultConfig, so keys the
// document omits keep their default values.
func LoadConfig(data []byte) (*Config, error) {
	cfg := *DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}
	return &cfg, nil
}

// applyDefaults restores defaults the document cleared explicitly, such as
// "log_level": "" or "events": null.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Events == nil {
		f := AllFeatures()
		cfg.Events = &f
	}
}

// Features returns the event features, defaulted.
func (c *Config) Features() Features {
	if c == nil || c.Events == nil {
		return AllFeatures()
	}
	return *c.Events
}
