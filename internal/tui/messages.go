package tui

import (
	"github.com/ndanilov/shelf-viewer/models"
)

// NavigateTo switches the root router to another page. Payload, if set, is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the login/sign-up flow. A nil Err means the adapter now
// holds a valid bearer token.
type AuthResult struct {
	Err      error
	Username string
}

type documentsLoadedMsg struct {
	collection models.Collection
	items      []models.Document
	err        error
}

type updateDoneMsg struct {
	collection models.Collection
	items      []models.Document
	err        error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
