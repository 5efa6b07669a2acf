// Package schemas holds the JSON Schema documents for resume-generator inputs.
package schemas

import _ "embed"

// ProfileSchemaFile is the file name of the profile schema in this directory
const ProfileSchemaFile = "profile.schema.json"

// Profile is the JSON Schema for the profile input record
//
//go:embed profile.schema.json
var Profile string
