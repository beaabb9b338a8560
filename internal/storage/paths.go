// Package storage answers whether upload paths exist on the backing medium.
package storage

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// PathChecker tests paths against a billy filesystem.
type PathChecker struct {
	fs billy.Filesystem
}

// NewPathChecker wraps fs.
func NewPathChecker(fs billy.Filesystem) *PathChecker {
	return &PathChecker{fs: fs}
}

// NewOSPathChecker checks absolute paths on the local disk.
func NewOSPathChecker() *PathChecker {
	return NewPathChecker(osfs.New("/"))
}

// IsDir reports whether path exists and is a directory.
func (c *PathChecker) IsDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := c.fs.Stat(path)
	return err == nil && fi.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func (c *PathChecker) IsFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := c.fs.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
