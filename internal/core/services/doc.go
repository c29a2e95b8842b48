// Package services implements the driving port interfaces.
// Services contain the core conversion workflow and orchestrate
// calls to driven ports (adapters).
package services
