// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Normalizer and TopicAttributor hold no mutable state; every
// collaborator they use is read-only during a call.
package services
