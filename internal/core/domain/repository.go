package domain

// Repository URLs that code references are linked against.
const (
	// BlobBase prefixes repository file paths for browsing.
	BlobBase = "https://github.com/twitter/the-algorithm/blob/main/"

	// SearchBase prefixes code-search queries for bare identifiers.
	SearchBase = "https://github.com/twitter/the-algorithm/search?q="
)
