package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names for
// the optional config file.
type StructuredJSONConfig struct {
	Keys struct {
		PasswordKeyFile string `json:"password_key_file"`
		ArticleKeyFile  string `json:"article_key_file"`
	} `json:"keys,omitempty"`

	Backup struct {
		Dir string `json:"dir"`
	} `json:"backup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Keys: Keys{
			PasswordKeyFile: jsonCfg.Keys.PasswordKeyFile,
			ArticleKeyFile:  jsonCfg.Keys.ArticleKeyFile,
		},
		Backup: Backup{
			Dir: jsonCfg.Backup.Dir,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
