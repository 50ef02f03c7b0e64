package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Decks   DecksConfig   `mapstructure:"decks" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// DecksConfig contains deck storage settings. Saved sessions live in the
// same directory as the deck files.
type DecksConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// LogConfig contains logging settings. Logs go to files because stdout is
// the interactive UI.
type LogConfig struct {
	Dir   string `mapstructure:"dir" validate:"required"`
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SessionConfig contains drill session settings.
type SessionConfig struct {
	// DefaultCards is the card count offered when the user does not enter
	// a valid number.
	DefaultCards int `mapstructure:"default_cards" validate:"required,gt=0"`
}
