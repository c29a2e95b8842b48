package coderefs

import (
	"fmt"
	"path"
	"strings"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
)

// BuildLink returns the hyperlink for ref.
//
// Identifiers link to a code search for the identifier, used verbatim as the
// query. Paths link to the file on the repository blob host, with a line
// fragment when a locator is present.
func BuildLink(ref domain.Reference) domain.Link {
	return domain.Link{
		URL:     linkURL(ref),
		Display: displayText(ref),
	}
}

func linkURL(ref domain.Reference) string {
	if ref.IsIdentifier() {
		return domain.SearchBase + ref.Path
	}
	return domain.BlobBase + ref.Path + ref.Lines.Fragment()
}

// displayText shortens nested paths to their file name and keeps the
// locator. Anything without a slash is shown as written.
func displayText(ref domain.Reference) string {
	if !strings.Contains(ref.Path, "/") {
		return ref.Raw
	}
	name := path.Base(ref.Path)
	if !ref.Lines.IsEmpty() {
		name += ":" + ref.Lines.String()
	}
	return name
}

// RenderLink renders link as an anchor wrapping a <code> element.
// The anchor opens in a new tab without an opener reference.
func RenderLink(link domain.Link) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener"><code>%s</code></a>`, link.URL, link.Display)
}
