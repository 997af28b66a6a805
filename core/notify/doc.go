// Package notify defines the transient notification channel used to surface
// operation outcomes to the user, the SDK equivalent of UI toasts.
package notify
