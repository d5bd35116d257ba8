//go:build debug

package xvec

const debugChecks = true
