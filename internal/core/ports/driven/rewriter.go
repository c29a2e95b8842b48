package driven

import (
	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// Rewriter converts code-ref blocks in a document into hyperlinks.
type Rewriter interface {
	// Rewrite returns the converted content along with block counts.
	// Blocks that already contain a hyperlink are left unchanged.
	Rewrite(content string) domain.RewriteResult
}
