// Package mocks holds gomock doubles used by the client tests.
package mocks

//go:generate mockgen -destination=mock_roundtripper.go -package=mocks net/http RoundTripper
