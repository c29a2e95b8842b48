// Package coderefs converts plain-text code references in HTML into
// hyperlinks. It works on a constrained, known markup shape
//
//	<p class="code-ref">...<code>path/to/file.ext:10-20</code>...</p>
//
// using regular expressions rather than an HTML parser. Everything outside
// the <code> element of a block is preserved byte for byte.
package coderefs
