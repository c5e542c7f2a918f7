// Package schemas embeds the JSON Schemas for documents accepted by the CLI and HTTP API.
package schemas

import _ "embed"

// UserProfile is the schema of a job seeker profile document.
//
//go:embed user_profile.schema.json
var UserProfile string

// Jobs is the schema of a jobs fixture document (YAML or JSON).
//
//go:embed jobs.schema.json
var Jobs string
