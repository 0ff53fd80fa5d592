// Package project loads project settings from YAML or CUE files.
//
// Settings implements platform.Project: it supplies the application name,
// the resource path, the custom user directory and the custom feature
// tokens consulted last by feature resolution.
package project
