// Package command maps raw user-supplied command strings to trusted
// absolute executable paths. It is the sole trust boundary of the
// program: every executable the program ever spawns has passed
// Resolver.Resolve.
package command

import (
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the filesystem checks the resolver performs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
}

// AllowList is the fixed execution policy: a set of trusted directory
// prefixes for absolute tokens plus one trusted local directory for
// bare tokens. It is constructed at process start and never mutated.
type AllowList struct {
	// Prefixes are absolute, slash-terminated directory prefixes
	// (e.g. "/usr/bin/"). An absolute token must carry one of them.
	Prefixes []string

	// CommandDir is the absolute path of the operator-managed script
	// directory next to the program binary. Bare tokens resolve here.
	CommandDir string
}

// Resolver validates command tokens against an AllowList.
type Resolver struct {
	fs    FileSystem
	allow AllowList
}

// NewResolver creates a Resolver with injected dependencies.
func NewResolver(fs FileSystem, allow AllowList) *Resolver {
	if fs == nil {
		panic("fs is required")
	}
	return &Resolver{fs: fs, allow: allow}
}

// Resolve maps a single command token to a trusted absolute executable
// path. Absolute tokens must exist, be executable, and carry one of
// the allow-list prefixes. Bare tokens resolve to an executable of the
// same name inside the local commands directory. There is no PATH
// lookup and no shell expansion.
func (r *Resolver) Resolve(token string) (string, error) {
	if token == "" {
		return "", &EmptyTokenError{}
	}

	if strings.HasPrefix(token, "/") {
		return r.resolveAbsolute(token)
	}
	return r.resolveLocal(token)
}

// ResolveSpec resolves spec.Name and stores the trusted path on the
// spec. The spec is left untouched on failure.
func (r *Resolver) ResolveSpec(spec *Spec) error {
	path, err := r.Resolve(spec.Name)
	if err != nil {
		return err
	}
	spec.Path = path
	return nil
}

func (r *Resolver) resolveAbsolute(token string) (string, error) {
	// The allow-list comparison below is a string-prefix check, so a
	// parent reference could walk out of a trusted directory after
	// passing it. Reject those tokens outright.
	for _, segment := range strings.Split(token, "/") {
		if segment == ".." {
			return "", &NotAllowedError{Token: token, Reason: "path contains parent references"}
		}
	}

	if err := r.checkExecutable(token); err != nil {
		return "", err
	}

	for _, prefix := range r.allow.Prefixes {
		if strings.HasPrefix(token, prefix) {
			return token, nil
		}
	}
	return "", &NotAllowedError{Token: token, Reason: "path is outside the allowed directories"}
}

func (r *Resolver) resolveLocal(token string) (string, error) {
	// A bare token must be a plain name; separators would escape the
	// commands directory.
	if strings.ContainsAny(token, `/\`) || token == ".." || token == "." {
		return "", &NotAllowedError{Token: token, Reason: "command name must not contain path separators"}
	}

	path := filepath.Join(r.allow.CommandDir, token)
	if err := r.checkExecutable(path); err != nil {
		if _, ok := err.(*NotFoundError); ok {
			return "", &NotFoundError{Token: token}
		}
		return "", err
	}
	return path, nil
}

func (r *Resolver) checkExecutable(path string) error {
	info, err := r.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Token: path}
		}
		return err
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
		return &NotExecutableError{Path: path}
	}
	return nil
}
