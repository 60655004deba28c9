// Package page holds the top-level state of the landing page: the selected
// language and whether the visitor already submitted an inquiry.
package page

import "github.com/bestbuycongo/starlink-inquiry/internal/entity"

type Phase string

const (
	AwaitingSubmission Phase = "awaiting-submission"
	Submitted          Phase = "submitted"
)

type Composer struct {
	language         entity.Language
	phase            Phase
	registrationOpen bool
}

func NewComposer(lang entity.Language) *Composer {
	return &Composer{language: lang, phase: AwaitingSubmission}
}

func (c *Composer) Language() entity.Language { return c.language }
func (c *Composer) Phase() Phase              { return c.phase }

// SetLanguage does not affect the phase.
func (c *Composer) SetLanguage(lang entity.Language) {
	c.language = lang
}

func (c *Composer) OpenRegistration() {
	if c.phase == AwaitingSubmission {
		c.registrationOpen = true
	}
}

// ToggleRegistration serves a composer that outlives one render; the HTTP
// handlers build a fresh composer per request and only call OpenRegistration.
func (c *Composer) ToggleRegistration() {
	if c.phase == AwaitingSubmission {
		c.registrationOpen = !c.registrationOpen
	}
}

// FormSucceeded is the completion callback of the registration form.
func (c *Composer) FormSucceeded() {
	c.phase = Submitted
	c.registrationOpen = false
}

// Reset returns to the form after the thank-you view. Over HTTP the
// "register another" link gets the same effect from a fresh composer.
func (c *Composer) Reset() {
	c.phase = AwaitingSubmission
	c.registrationOpen = false
}

type View string

const (
	ViewNone     View = ""
	ViewForm     View = "form"
	ViewThankYou View = "thank-you"
)

// View tells which section renders below the products.
func (c *Composer) View() View {
	switch {
	case c.phase == Submitted:
		return ViewThankYou
	case c.registrationOpen:
		return ViewForm
	default:
		return ViewNone
	}
}
