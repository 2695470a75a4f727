package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	cardPolicyOnce sync.Once
	cardPolicy     *bluemonday.Policy
)

// sanitizeCardMarkup neutralises any HTML or script that free-text record
// fields smuggled into the rendered fragment. Every fragment passes through
// here before it reaches a page.
func sanitizeCardMarkup(raw string) string {
	return strings.TrimSpace(cardSanitizer().Sanitize(raw))
}

func cardSanitizer() *bluemonday.Policy {
	cardPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()

		elements := []string{
			"div", "h3", "p", "strong", "span", "section", "i", "button",
		}
		policy.AllowElements(elements...)
		policy.AllowAttrs("class").OnElements(elements...)
		policy.AllowAttrs("type").OnElements("button")

		cardPolicy = policy
	})
	return cardPolicy
}
