package feature

var archTokens = []string{"x86"}
