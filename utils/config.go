package utils

import "trackcare/config"

// IsProduction reports whether the app is running with a production config.
func IsProduction() bool {
	return config.IsProduction()
}
