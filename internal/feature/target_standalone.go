//go:build !editor

package feature

const targetToken = "standalone"
