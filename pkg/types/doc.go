// Package types defines the Inspectable and Writeable capability contracts,
// the member descriptor and value abstractions behind them, and the standard
// error types for the inspector.
//
// A driver navigates a live object graph through Inspectable values only;
// slots whose storage is mutable also satisfy Writeable.
package types
