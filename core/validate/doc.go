// Package validate wraps go-playground/validator with the human-readable
// messages the client shows for form input. Validation always runs before
// the network: a rejected struct issues zero HTTP requests.
package validate
