package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config defines the command's configuration.
type Config struct {
	Data    string   `json:"data"`
	Feeds   []string `json:"feeds"`
	Result  string   `json:"result,omitempty"`
	Alpha   float64  `json:"alpha"`
	Start   float64  `json:"start"`
	MaxIter int      `json:"maxiter"`
}

// Default values for settings missing from the configuration file.
const (
	DefaultAlpha = 0.05
	DefaultStart = 1.0
)

// UpdateInConfig updates the value in dest with val if the according
// value is not the zero-type for the underlying type.  Dest must be a
// pointer type to either string, int, float64 or bool.  Otherwise the
// function panics.
func UpdateInConfig(dest, val interface{}) {
	switch dest.(type) {
	case *string:
		v := val.(string)
		if v != "" {
			(*dest.(*string)) = v
		}
	case *int:
		v := val.(int)
		if v != 0 {
			(*dest.(*int)) = v
		}
	case *float64:
		v := val.(float64)
		if v != 0 {
			(*dest.(*float64)) = v
		}
	case *bool:
		v := val.(bool)
		if v {
			(*dest.(*bool)) = v
		}
	default:
		panic("bad type")
	}
}

// ReadConfig reads the config from a json or toml file.  If the name
// is empty, a configuration with default values is returned.  If name
// has the prefix '{' and the suffix '}' the name is interpreted as a
// json string and parsed accordingly.
func ReadConfig(name string) (*Config, error) {
	config, err := readConfig(name)
	if err != nil {
		return nil, err
	}
	if config.Alpha == 0 {
		config.Alpha = DefaultAlpha
	}
	if config.Start == 0 {
		config.Start = DefaultStart
	}
	return config, nil
}

func readConfig(name string) (*Config, error) {
	var config Config
	if name == "" {
		return &config, nil
	}
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		r := strings.NewReader(name)
		if err := json.NewDecoder(r).Decode(&config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	is, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	defer is.Close()
	if strings.HasSuffix(name, ".toml") {
		if _, err := toml.DecodeReader(is, &config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	if err := json.NewDecoder(is).Decode(&config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return &config, nil
}

// FeedPair returns the two feed labels configured for the comparison.
func (c *Config) FeedPair() (string, string, error) {
	if len(c.Feeds) != 2 {
		return "", "", fmt.Errorf("feedPair: need exactly 2 feed labels; got %d", len(c.Feeds))
	}
	return c.Feeds[0], c.Feeds[1], nil
}
