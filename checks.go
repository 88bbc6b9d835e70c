package htmlgrade

// ChecksLoader reads the list of selectors to evaluate.
type ChecksLoader interface {
	// LoadChecks returns the selectors stored at path in file order.
	// Returns ENOTFOUND if path does not exist and EINVALID if the content
	// is not a list of strings.
	LoadChecks(path string) ([]string, error)
}
