// Package flow implements the choice -> form -> result sequence shared by
// every data-entry screen: pick between profile pre-fill and a blank
// form, submit the form to a generator, show the result, optionally save
// it and come back to the saved-items list. One parametrized controller
// replaces the per-screen copies of this logic.
package flow

import (
	"context"
	"errors"

	"fittrack/internal/models"
)

type State int

const (
	StateChoice State = iota
	StateForm
	StateResult
)

var (
	ErrNotInForm       = errors.New("flow: submit is only valid in the form state")
	ErrNotInResult     = errors.New("flow: save is only valid in the result state")
	ErrRequestInFlight = errors.New("flow: a request is already in flight")
	ErrSaveInProgress  = errors.New("flow: result cannot be dismissed while saving")
)

// Config parametrizes a Controller. F is the editable form model, R the
// generated result, S the persisted saved-item type.
type Config[F, R, S any] struct {
	// Defaults is the blank form model.
	Defaults F
	// Prefill copies profile values into the form and returns the names
	// of the fields it filled; those fields become read-only.
	Prefill func(profile *models.UserProfile, form *F) []string
	// Submit runs the remote generation. Nothing is persisted here.
	Submit func(ctx context.Context, form F) (R, error)
	// Save persists an accepted result under the given name.
	Save func(ctx context.Context, name string, result R) error
	// LoadSaved reloads the saved-items list from the persistence layer,
	// so entries carry their server-assigned id and timestamp.
	LoadSaved func(ctx context.Context) ([]S, error)
}

type Controller[F, R, S any] struct {
	cfg Config[F, R, S]

	state  State
	form   F
	locked map[string]bool
	result *R
	saved  []S
	errMsg string

	submitting bool
	saving     bool
	closed     bool
}

func New[F, R, S any](cfg Config[F, R, S]) *Controller[F, R, S] {
	return &Controller[F, R, S]{
		cfg:    cfg,
		state:  StateChoice,
		form:   cfg.Defaults,
		locked: make(map[string]bool),
	}
}

func (c *Controller[F, R, S]) State() State { return c.state }
func (c *Controller[F, R, S]) Form() F      { return c.form }
func (c *Controller[F, R, S]) Error() string { return c.errMsg }
func (c *Controller[F, R, S]) Saved() []S   { return c.saved }

// FieldLocked reports whether a field was pre-filled from the profile
// and must be rendered read-only.
func (c *Controller[F, R, S]) FieldLocked(name string) bool {
	return c.locked[name]
}

// InFlight reports whether a submit or save is outstanding; the
// triggering control stays disabled while it is.
func (c *Controller[F, R, S]) InFlight() bool {
	return c.submitting || c.saving
}

// Result returns the generated result while in the result state.
func (c *Controller[F, R, S]) Result() (R, bool) {
	if c.result == nil {
		var zero R
		return zero, false
	}
	return *c.result, true
}

// EnterFormWithProfile moves to the form state with profile-derived
// fields copied in and locked. A nil profile behaves like a blank entry.
func (c *Controller[F, R, S]) EnterFormWithProfile(profile *models.UserProfile) {
	c.form = c.cfg.Defaults
	c.locked = make(map[string]bool)
	c.errMsg = ""
	if profile != nil && c.cfg.Prefill != nil {
		for _, name := range c.cfg.Prefill(profile, &c.form) {
			c.locked[name] = true
		}
	}
	c.state = StateForm
}

// EnterFormBlank moves to the form state with every field reset to its
// default, regardless of any stored profile.
func (c *Controller[F, R, S]) EnterFormBlank() {
	c.form = c.cfg.Defaults
	c.locked = make(map[string]bool)
	c.errMsg = ""
	c.state = StateForm
}

// UpdateForm edits the form model in place. Locked fields are the UI's
// responsibility to render read-only; the callback gets the whole model.
func (c *Controller[F, R, S]) UpdateForm(edit func(*F)) {
	edit(&c.form)
}

// Submit runs the remote call. On failure the controller stays in the
// form state with the message recorded; nothing is persisted until a
// result has been received and explicitly saved.
func (c *Controller[F, R, S]) Submit(ctx context.Context) error {
	if c.state != StateForm {
		return ErrNotInForm
	}
	if c.InFlight() {
		return ErrRequestInFlight
	}

	c.submitting = true
	c.errMsg = ""
	result, err := c.cfg.Submit(ctx, c.form)
	c.submitting = false

	if c.closed {
		// The owner went away mid-request; drop the response.
		return nil
	}
	if err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.result = &result
	c.state = StateResult
	return nil
}

// Dismiss closes the result overlay without saving and returns to the
// form. It refuses while a save is outstanding.
func (c *Controller[F, R, S]) Dismiss() error {
	if c.saving {
		return ErrSaveInProgress
	}
	if c.state == StateResult {
		c.result = nil
		c.state = StateForm
	}
	return nil
}

// Save persists the result and, on success, reloads the saved-items list
// and returns to the choice state.
func (c *Controller[F, R, S]) Save(ctx context.Context, name string) error {
	if c.state != StateResult || c.result == nil {
		return ErrNotInResult
	}
	if c.InFlight() {
		return ErrRequestInFlight
	}

	c.saving = true
	err := c.cfg.Save(ctx, name, *c.result)
	c.saving = false

	if c.closed {
		return nil
	}
	if err != nil {
		c.errMsg = err.Error()
		return err
	}

	if c.cfg.LoadSaved != nil {
		if saved, err := c.cfg.LoadSaved(ctx); err == nil {
			c.saved = saved
		}
	}
	c.result = nil
	c.state = StateChoice
	return nil
}

// RefreshSaved reloads the saved-items list, e.g. on first render or
// after a delete.
func (c *Controller[F, R, S]) RefreshSaved(ctx context.Context) error {
	if c.cfg.LoadSaved == nil {
		return nil
	}
	saved, err := c.cfg.LoadSaved(ctx)
	if err != nil {
		return err
	}
	c.saved = saved
	return nil
}

// Close marks the controller abandoned; responses of in-flight requests
// are dropped instead of applied.
func (c *Controller[F, R, S]) Close() {
	c.closed = true
}
