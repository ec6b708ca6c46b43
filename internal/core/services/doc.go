// Package services implements the driving port interfaces.
// Services validate input, call the natal pipeline and orchestrate
// calls to driven ports (adapters).
package services
