package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrdering(t *testing.T) {
	assert.Equal(t, "/founding", NextPath("company"))
	assert.Equal(t, "/socials", NextPath("founding"))
	assert.Equal(t, "/contact", NextPath("socials"))
	assert.Equal(t, "/success", NextPath("contact"))
}

func TestUnknownStepFallsBackToSuccess(t *testing.T) {
	assert.Equal(t, "/success", NextPath("nonsense"))
}

func TestEveryStepHasTemplateAndPath(t *testing.T) {
	for _, step := range OnboardingSteps {
		assert.NotEmpty(t, step.Name)
		assert.NotEmpty(t, step.Path)
		assert.NotEmpty(t, step.Template)
		assert.NotEmpty(t, step.Next)
	}
}
