// Package cli holds the pieces shared by the fxrender and fxplay commands:
// test signal generation, Name=value parameter flags and logger setup.
package cli
