package feature

var archTokens = []string{"arm64"}
