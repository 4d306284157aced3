// Package config manages user-level settings stored at ~/.oxskel/config.yaml.
// The settings provide the defaults offered by the module and component
// commands, such as the composer vendor, the license and the author, so
// that repeated scaffolding runs need fewer answers.
package config
