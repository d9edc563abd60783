// Package notifier announces newly listed shows to an external channel.
//
// Notifier implementations share a formatter so the dry-run output matches
// what would actually be posted.
package notifier
