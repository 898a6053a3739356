// Package config loads and validates the player configuration file.
//
// Configuration is YAML. Loading runs two passes: a structural pass that
// validates the document against a JSON Schema derived from [Config], and
// a semantic pass that checks cross-field rules like band ordering and
// transition validity. Unset fields fall back to [Default] values.
package config
