package manifest

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"
)

type migrationsConfig struct {
	TableStorage struct {
		TableName string `yaml:"table_name"`
	} `yaml:"table_storage"`
	MigrationsPaths map[string]string `yaml:"migrations_paths"`
}

// Migrations renders the doctrine migrations configuration of module id.
// Migration classes live in the <namespace>\Migrations namespace under data/.
func Migrations(id, namespace string) ([]byte, error) {
	var cfg migrationsConfig
	cfg.TableStorage.TableName = "oxmigrations_" + id
	cfg.MigrationsPaths = map[string]string{namespace + `\Migrations`: "data"}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding migrations config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding migrations config: %w", err)
	}
	return buf.Bytes(), nil
}

// parseMigrations returns the table name and path mapping of a migrations
// configuration.
func parseMigrations(data []byte) (string, map[string]string, error) {
	var cfg migrationsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", nil, fmt.Errorf("parsing migrations config: %w", err)
	}
	return cfg.TableStorage.TableName, cfg.MigrationsPaths, nil
}
