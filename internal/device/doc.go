// Package device defines the Bluetooth device record produced by the
// controller's listing parser, plus the Target variant used to address
// connect/disconnect actions.
//
// Records are rebuilt wholesale on every refresh; nothing in this package
// persists or merges state across listings.
package device
