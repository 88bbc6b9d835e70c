package mock

import "github.com/fwojciec/htmlgrade"

var _ htmlgrade.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader is a mock implementation of htmlgrade.ChecksLoader.
type ChecksLoader struct {
	LoadChecksFn func(path string) ([]string, error)
}

func (l *ChecksLoader) LoadChecks(path string) ([]string, error) {
	return l.LoadChecksFn(path)
}
