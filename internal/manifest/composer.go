package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Package types written to composer.json.
const (
	TypeModule    = "oxideshop-module"
	TypeComponent = "oxideshop-component"
)

// Deps is a composer dependency table. An empty table is written as {}.
type Deps map[string]string

// Author is one entry of the composer authors list.
type Author struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Autoload holds the psr-4 namespace to directory mapping.
type Autoload struct {
	PSR4 map[string]string `json:"psr-4"`
}

// Composer is the subset of composer.json the scaffolder writes. Field order
// is the key order in the written file.
type Composer struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Keywords    []string `json:"keywords,omitempty"`
	License     string   `json:"license"`
	Version     string   `json:"version"`
	Authors     []Author `json:"authors,omitempty"`
	Autoload    Autoload `json:"autoload"`
	Require     Deps     `json:"require"`
	RequireDev  *Deps    `json:"require-dev,omitempty"`
}

// NewModule returns the manifest of an eShop module. The namespace gets a
// trailing backslash as psr-4 prefixes require.
func NewModule(name, description, license, version, namespace, target string, author Author) *Composer {
	c := &Composer{
		Name:        name,
		Description: description,
		Type:        TypeModule,
		Keywords:    []string{"oxid", "eshop", "module"},
		License:     license,
		Version:     version,
		Autoload:    Autoload{PSR4: map[string]string{psr4Prefix(namespace): psr4Dir(target)}},
		Require:     Deps{},
		RequireDev:  &Deps{},
	}
	if author.Name != "" || author.Email != "" {
		c.Authors = []Author{author}
	}
	return c
}

// NewComponent returns the manifest of a composer component. The author
// entry is added only when a name or email is known.
func NewComponent(name, description, license, version, namespace, target string, author Author) *Composer {
	c := &Composer{
		Name:        name,
		Description: description,
		Type:        TypeComponent,
		License:     license,
		Version:     version,
		Autoload:    Autoload{PSR4: map[string]string{psr4Prefix(namespace): psr4Dir(target)}},
		Require:     Deps{},
	}
	if author.Name != "" || author.Email != "" {
		c.Authors = []Author{author}
	}
	return c
}

func psr4Prefix(namespace string) string {
	if namespace == "" || namespace[len(namespace)-1] == '\\' {
		return namespace
	}
	return namespace + `\`
}

// psr4Dir returns target as a slash-terminated directory relative to the
// package root.
func psr4Dir(target string) string {
	target = strings.TrimPrefix(strings.ReplaceAll(target, `\`, "/"), "./")
	if target == "" || strings.HasSuffix(target, "/") {
		return target
	}
	return target + "/"
}

// Marshal renders c as indented JSON with a trailing newline.
func Marshal(c *Composer) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding composer manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a composer.json document.
func Parse(data []byte) (*Composer, error) {
	var c Composer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing composer manifest: %w", err)
	}
	return &c, nil
}
