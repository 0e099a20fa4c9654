package config

import "errors"

var errMissingSessionSecret = errors.New("config: SESSION_SECRET is required in production")
