// Package fx defines the contract between effect implementations and the
// code that hosts them.
//
// An [Effect] processes one stereo block of core.BlockSize samples in place
// per call and reads its parameters from a [ParamSet] handed to it through a
// [Context] at construction. Parameter writes may come from any goroutine;
// reads on the audio goroutine are single atomic loads, so a block sees each
// parameter either before or after a concurrent write but never torn.
//
// A [Registry] maps effect type names to factories and parameter layouts,
// and a [Rack] hosts a fixed number of serial slots built from a registry.
package fx
