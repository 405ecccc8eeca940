package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Properties represents a parsed properties file as a flat map
type Properties map[string]string

// ParseProperties parses a properties file supporting both = and : delimiters
func ParseProperties(path string) (Properties, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	props := make(Properties)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var key, value string
		if k, v, found := strings.Cut(line, "="); found {
			key, value = k, v
		} else if k, v, found := strings.Cut(line, ":"); found {
			key, value = k, v
		} else {
			continue
		}

		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return props, nil
}

// Get returns the value for a key, or empty string if not found
func (p Properties) Get(key string) string {
	return p[key]
}

// GetWithDefault returns the value for a key, or the default if not found
func (p Properties) GetWithDefault(key, defaultValue string) string {
	if val, ok := p[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

// GetBool interprets a key as a boolean; an absent or empty key yields the
// default, a present one is true unless it is "false", "no", or "0"
func (p Properties) GetBool(key string, defaultValue bool) bool {
	val, ok := p[key]
	if !ok || val == "" {
		return defaultValue
	}
	return !(val == "false" || val == "no" || val == "0")
}

// GetList parses a comma-separated value into a slice
func (p Properties) GetList(key string) []string {
	val := p[key]
	if val == "" {
		return nil
	}

	var result []string
	for _, item := range strings.Split(val, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
