//go:build release

package feature

const buildToken = "release"
