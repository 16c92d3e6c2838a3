// Package engine defines the contract between the editor adapter and an
// editor engine implementation.
//
// An engine owns document models and live editor instances. The adapter in
// package monaco consumes this contract; package textengine provides the
// in-process reference implementation. The package itself carries no
// implementation and no UI dependency.
package engine
