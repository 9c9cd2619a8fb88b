package manifest

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"
)

// Name is the location of the manifest inside a JAR.
const Name = "META-INF/MANIFEST.MF"

var log = commonlog.GetLogger("jarpath.manifest")

// ReadJar returns the Class-Path entries of the JAR at path. A JAR without
// a manifest has no entries.
func ReadJar(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open jar %s: %w", path, err)
	}
	defer zr.Close()

	return readArchive(&zr.Reader, path)
}

func readArchive(zr *zip.Reader, name string) ([]string, error) {
	for _, f := range zr.File {
		// JAR readers look the manifest up case-insensitively
		if !strings.EqualFold(f.Name, Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", f.Name, name, err)
		}
		defer rc.Close()

		entries, err := ClassPath(NewCRLFReader(rc))
		if err != nil {
			return nil, fmt.Errorf("read %s in %s: %w", f.Name, name, err)
		}
		log.Debugf("%s: %d Class-Path entries", name, len(entries))
		return entries, nil
	}

	log.Debugf("%s: no manifest", name)
	return []string{}, nil
}

// ReadFile returns the Class-Path entries of a manifest stored as a plain
// file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	entries, err := ClassPath(NewCRLFReader(f))
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return entries, nil
}
