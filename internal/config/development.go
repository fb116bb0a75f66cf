package config

import "os"

// Development reports whether the DEVELOPMENT env variable asks for
// development mode regardless of the config file.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
