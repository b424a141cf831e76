package markdown

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy

	languageClassRe = regexp.MustCompile(`^language-[A-Za-z0-9_+#.-]+$`)
)

// Sanitize strips anything from html that a user-generated-content policy
// would not allow, keeping the language-* class on code elements.
func Sanitize(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	return sanitizer().Sanitize(html)
}

func sanitizer() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Matching(languageClassRe).OnElements("code")
		sanitizePolicy = policy
	})
	return sanitizePolicy
}
