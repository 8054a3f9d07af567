//go:build !pscalc_debug
// +build !pscalc_debug

package pscalc

func (*env) debugCodes() {}

func (*env) debugState(int) {}

func (*env) debugError(int, error) {}
