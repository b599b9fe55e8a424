package main

import (
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	SendCooldown         time.Duration `env:"SEND_COOLDOWN,default=20s"`
	SessionStampDuration time.Duration `env:"SESSION_STAMP_DURATION,default=24h"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	CensoredWords        []string      `env:"CENSORED_WORDS"`
	AuthMode             string        `env:"AUTH_MODE,default=plain"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
