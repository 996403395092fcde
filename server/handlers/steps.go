package handlers

// Step is one screen of the onboarding flow. The ordering of the flow is
// this table, not redirect literals scattered across handlers.
type Step struct {
	Name     string
	Path     string
	Template string
	Next     string
}

// OnboardingSteps is the linear company → founding → socials → contact
// sequence; each POST redirects to Next. The terminal /success page is a
// redirect target only, not a step with a form.
var OnboardingSteps = []Step{
	{Name: "company", Path: "/company", Template: "company.html", Next: "/founding"},
	{Name: "founding", Path: "/founding", Template: "founding.html", Next: "/socials"},
	{Name: "socials", Path: "/socials", Template: "socials.html", Next: "/contact"},
	{Name: "contact", Path: "/contact", Template: "contact.html", Next: "/success"},
}

// NextPath returns the redirect target after a step is saved.
func NextPath(name string) string {
	for _, step := range OnboardingSteps {
		if step.Name == name {
			return step.Next
		}
	}
	return "/success"
}
