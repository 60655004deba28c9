package page

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
)

func TestComposerLifecycle(t *testing.T) {
	c := NewComposer(entity.English)
	assert.Equal(t, AwaitingSubmission, c.Phase())
	assert.Equal(t, ViewNone, c.View())

	c.OpenRegistration()
	assert.Equal(t, ViewForm, c.View())

	c.FormSucceeded()
	assert.Equal(t, Submitted, c.Phase())
	assert.Equal(t, ViewThankYou, c.View())

	c.OpenRegistration()
	assert.Equal(t, ViewThankYou, c.View())

	c.Reset()
	assert.Equal(t, AwaitingSubmission, c.Phase())
	assert.Equal(t, ViewNone, c.View())
}

func TestComposerLanguageIsOrthogonal(t *testing.T) {
	c := NewComposer(entity.English)
	c.OpenRegistration()
	c.SetLanguage(entity.French)
	assert.Equal(t, ViewForm, c.View())

	c.FormSucceeded()
	c.SetLanguage(entity.English)
	assert.Equal(t, Submitted, c.Phase())

	c.Reset()
	assert.Equal(t, entity.English, c.Language())
}

func TestComposerToggleRegistration(t *testing.T) {
	c := NewComposer(entity.French)
	c.ToggleRegistration()
	assert.Equal(t, ViewForm, c.View())
	c.ToggleRegistration()
	assert.Equal(t, ViewNone, c.View())
}
