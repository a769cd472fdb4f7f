package utils

import "github.com/mattn/go-zglob"

// ZglobMatcher matches paths using mattn/go-zglob, so ** spans directories.
type ZglobMatcher struct{}

// Match reports whether name matches pattern.
func (ZglobMatcher) Match(pattern, name string) (bool, error) {
	return zglob.Match(pattern, name)
}
