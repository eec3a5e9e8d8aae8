package dashboard

import "github.com/jala-youth/jala-web/internal/model"

// Action is an input to Dispatch.
type Action interface {
	action()
}

// Login submits the admin password.
type Login struct{ Password string }

// Logout ends the session.
type Logout struct{}

// Resume restores a session whose token survived from an earlier run.
type Resume struct{}

// SelectTab makes Tab active and loads it on first selection.
type SelectTab struct{ Tab Tab }

// Refresh refetches Tab (the active tab when empty).
type Refresh struct{ Tab Tab }

// RequestDelete asks for confirmation before removing a record.
type RequestDelete struct {
	Kind model.RecordKind
	ID   int
}

// ConfirmDelete carries out the pending delete. Kind and ID, when set, must
// match the pending request.
type ConfirmDelete struct {
	Kind model.RecordKind
	ID   int
}

// CancelDelete drops the pending delete.
type CancelDelete struct{}

func (Login) action()         {}
func (Logout) action()        {}
func (Resume) action()        {}
func (SelectTab) action()     {}
func (Refresh) action()       {}
func (RequestDelete) action() {}
func (ConfirmDelete) action() {}
func (CancelDelete) action()  {}
