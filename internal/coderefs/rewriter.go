package coderefs

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
	"github.com/custodia-labs/convert-code-refs/internal/logger"
)

// Ensure Rewriter implements the interface.
var _ driven.Rewriter = (*Rewriter)(nil)

// Pre-compiled patterns for the code-ref markup.
var (
	codeRefBlock = regexp.MustCompile(`(?s)<p class="code-ref"[^>]*>.*?</p>`)
	codeElement  = regexp.MustCompile(`<code>([^<]+)</code>`)
)

// anchorOpen marks a block that already carries a hyperlink.
const anchorOpen = "<a href="

// Rewriter links the code references of every code-ref block.
type Rewriter struct{}

// New creates a new code-ref rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Rewrite converts every code-ref block of content that has no hyperlink
// yet. Blocks without a <code> element are left as they are. Running
// Rewrite on its own output changes nothing.
func (r *Rewriter) Rewrite(content string) domain.RewriteResult {
	var res domain.RewriteResult

	res.Content = codeRefBlock.ReplaceAllStringFunc(content, func(block string) string {
		res.Blocks++
		out, converted := rewriteBlock(res.Blocks, block)
		switch {
		case converted:
			res.Converted++
		case hasLink(block):
			res.Skipped++
		}
		return out
	})

	_, res.Linked = countBlocks(res.Content)
	return res
}

// countBlocks returns the number of code-ref blocks in content and the
// number of those that contain a hyperlink.
func countBlocks(content string) (blocks, linked int) {
	for _, block := range codeRefBlock.FindAllString(content, -1) {
		blocks++
		if hasLink(block) {
			linked++
		}
	}
	return blocks, linked
}

// rewriteBlock splices a hyperlink around the first <code> element of block.
func rewriteBlock(n int, block string) (string, bool) {
	if hasLink(block) {
		logger.Debug("block %d: already linked", n)
		return block, false
	}

	loc := codeElement.FindStringSubmatchIndex(block)
	if loc == nil {
		logger.Debug("block %d: no code element, left unchanged", n)
		return block, false
	}

	ref := ParseReference(block[loc[2]:loc[3]])
	link := BuildLink(ref)
	logger.Debug("block %d: %s %q -> %s", n, ref.Kind, ref.Raw, link.URL)

	return block[:loc[0]] + RenderLink(link) + block[loc[1]:], true
}

func hasLink(block string) bool {
	return strings.Contains(block, anchorOpen)
}
