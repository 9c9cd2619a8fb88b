// Package classpath turns JAR manifest Class-Path entries into file paths
// and expands a list of JARs into the full class path they imply.
package classpath

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jarpath/manifest"
)

var log = commonlog.GetLogger("jarpath.classpath")

// fileURL returns the file: URL of an absolute path.
func fileURL(path string) *url.URL {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/x
	}
	return &url.URL{Scheme: "file", Path: p}
}

// urlPath is the inverse of fileURL.
func urlPath(u *url.URL) string {
	p := u.Path
	if len(p) > 2 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.Clean(filepath.FromSlash(p))
}

// Resolve interprets entry as a URL relative to the directory of jarPath.
// It reports ok=false for entries that resolve to something other than a
// local file, such as http: URLs. The result is relative to the working
// directory when jarPath is.
func Resolve(jarPath, entry string) (path string, ok bool, err error) {
	abs, err := filepath.Abs(jarPath)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", jarPath, err)
	}

	ref, err := url.Parse(entry)
	if err != nil {
		return "", false, fmt.Errorf("invalid Class-Path entry %q in %s: %w", entry, jarPath, err)
	}

	u := fileURL(abs).ResolveReference(ref)
	if u.Scheme != "file" {
		return "", false, nil
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", false, nil
	}
	resolved := urlPath(u)
	if filepath.IsAbs(jarPath) || filepath.IsAbs(filepath.FromSlash(ref.Path)) {
		return resolved, true, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return resolved, true, nil
	}
	if rel, err := filepath.Rel(cwd, resolved); err == nil {
		return rel, true, nil
	}
	return resolved, true, nil
}

// Resolver expands JARs into the class path their manifests describe.
type Resolver struct {
	// Follow enables reading Class-Path attributes. When false, Expand only
	// removes duplicates.
	Follow bool
	// KeepMissing keeps entries that do not exist on disk.
	KeepMissing bool

	// classPath reads the Class-Path entries of a JAR.
	classPath func(path string) ([]string, error)
}

func NewResolver() *Resolver {
	return &Resolver{
		Follow:    true,
		classPath: manifest.ReadJar,
	}
}

// Expand returns roots followed, depth first, by the entries their
// manifests reference. Each path appears once, at its first occurrence.
// Roots are kept even when missing; referenced entries that do not exist
// are dropped unless KeepMissing is set.
func (r *Resolver) Expand(roots []string) ([]string, error) {
	e := &expansion{r: r, seen: make(map[string]bool)}
	for _, root := range roots {
		if err := e.add(root, true); err != nil {
			return nil, err
		}
	}
	if e.paths == nil {
		return []string{}, nil
	}
	return e.paths, nil
}

type expansion struct {
	r     *Resolver
	seen  map[string]bool
	paths []string
}

func (e *expansion) add(path string, root bool) error {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}
	if e.seen[key] {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if !root && !e.r.KeepMissing {
			log.Warningf("skipping missing class path entry %s", path)
			return nil
		}
		log.Debugf("class path entry %s does not exist", path)
		e.seen[key] = true
		e.paths = append(e.paths, path)
		return nil
	}

	e.seen[key] = true
	e.paths = append(e.paths, path)

	if !e.r.Follow || info.IsDir() || !isArchive(path) {
		return nil
	}

	entries, err := e.r.classPath(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		resolved, ok, err := Resolve(path, entry)
		if err != nil {
			log.Warningf("%s", err)
			continue
		}
		if !ok {
			log.Debugf("%s: ignoring non-file Class-Path entry %q", path, entry)
			continue
		}
		if err := e.add(resolved, false); err != nil {
			return err
		}
	}
	return nil
}

func isArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip":
		return true
	}
	return false
}
