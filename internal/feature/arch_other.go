//go:build !amd64 && !386 && !arm64 && !arm

package feature

var archTokens []string
