package repository

import "golang.org/x/mod/modfile"

const (
	KindGo         = "go"
	KindJavaScript = "javascript"
	KindGit        = "git"
	KindUnknown    = "unknown"
)

// Project represents a detected project
type Project struct {
	Root         string          // Absolute path of the project root directory
	Kind         string          // Marker kind, KindUnknown without a marker
	Name         string          // Module path, package name or directory name
	RelativePath string          // Path from project root to the detected location
	Origin       string          // Git remote origin URL
	Module       *modfile.Module // Go module, set for KindGo
}
