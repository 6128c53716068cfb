package core

import (
	"errors"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Features() != AllFeatures() {
		t.Errorf("features = %+v, want all", cfg.Features())
	}
}

func TestLoadConfigFeatures(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"log_level":"debug","events":{"can":false,"sai":false}}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	f := cfg.Features()
	if !f.Allows(CategoryUART) || !f.Allows(CategoryI2C) || !f.Allows(CategoryExternal) {
		t.Errorf("expected uart, i2c and external enabled: %+v", f)
	}
	if f.Allows(CategoryCAN) || f.AllowsType(SAIError) {
		t.Errorf("expected can and sai disabled: %+v", f)
	}
}

func TestLoadConfigPartialEventsKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"events":{"adc":false}}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	f := cfg.Features()
	if f.ADC {
		t.Error("adc should be disabled")
	}
	want := AllFeatures()
	want.ADC = false
	if f != want {
		t.Errorf("features = %+v, want %+v", f, want)
	}
	if !f.Allows(CategoryExternal) || !f.Allows(CategoryUART) {
		t.Errorf("omitted keys turned events off: %+v", f)
	}
}

func TestLoadConfigNullEvents(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"log_level":"","events":null}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Features() != AllFeatures() {
		t.Errorf("cfg = %+v %+v", cfg.LogLevel, cfg.Features())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig([]byte(`{`)); err == nil {
		t.Error("expected parse error")
	}
	_, err := LoadConfig([]byte(`{"log_level":"loud"}`))
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}

func TestNilConfigFeatures(t *testing.T) {
	var cfg *Config
	if cfg.Features() != AllFeatures() {
		t.Error("nil config should enable everything")
	}
}
