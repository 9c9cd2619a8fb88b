package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/dhamidi/jarpath/manifest"
)

func newManifestCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "manifest <jar|MANIFEST.MF|->",
		Short: "Print the Class-Path entries of a JAR manifest",
		Long: `Print the entries of the Class-Path attribute, one per line.

The argument may be a JAR (or any zip archive), a manifest file, or "-"
to read a manifest from standard input. Entries are printed exactly as
written, in order and including duplicates; they are not resolved.

Examples:
  jarpath manifest app.jar
  jarpath manifest META-INF/MANIFEST.MF
  unzip -p app.jar META-INF/MANIFEST.MF | jarpath manifest -
  jarpath manifest -f json app.jar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return writeEntries(cmd.OutOrStdout(), entries, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}

func readEntries(stdin io.Reader, arg string) ([]string, error) {
	if arg == "-" {
		entries, err := manifest.ClassPath(manifest.NewCRLFReader(stdin))
		if err != nil {
			return nil, fmt.Errorf("read manifest from stdin: %w", err)
		}
		return entries, nil
	}

	switch strings.ToLower(filepath.Ext(arg)) {
	case ".jar", ".zip", ".war", ".ear":
		return manifest.ReadJar(arg)
	default:
		return manifest.ReadFile(arg)
	}
}

func writeEntries(w io.Writer, entries []string, outputFormat string) error {
	switch outputFormat {
	case "line":
		for _, entry := range entries {
			if _, err := fmt.Fprintln(w, entry); err != nil {
				return err
			}
		}
		return nil
	case "json":
		data, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format: %s (expected line or json)", outputFormat)
	}
}
