// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale catalogs against the message IDs
// passed to i18n.T in the Go sources. Missing keys fail the run; orphaned
// keys only warn.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

func main() {
	os.Exit(run(".", os.Stdout))
}

// run lints the module rooted at root and returns the process exit code.
func run(root string, w io.Writer) int {
	used, err := findUsedKeys(root)
	if err != nil {
		fmt.Fprintf(w, "error scanning sources: %v\n", err)
		return 1
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		fmt.Fprintf(w, "error loading %s: %v\n", primaryLocale, err)
		return 1
	}
	fmt.Fprintf(w, "%d keys used in code, %d in %s\n", len(used), len(primary), primaryLocale)

	failed := false
	for _, key := range sortedKeys(used) {
		if _, ok := primary[key]; !ok {
			loc := used[key][0]
			fmt.Fprintf(w, "undefined: %s (%s:%d)\n", key, loc.Filepath, loc.Line)
			failed = true
		}
	}
	for _, key := range sortedKeys(primary) {
		if _, ok := used[key]; !ok {
			fmt.Fprintf(w, "orphaned: %s\n", key)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Fprintf(w, "error listing locales: %v\n", err)
		return 1
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(w, "error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		for _, key := range sortedKeys(primary) {
			if _, ok := keys[key]; !ok {
				fmt.Fprintf(w, "missing in %s: %s\n", filepath.Base(file), key)
				failed = true
			}
		}
	}

	if failed {
		return 1
	}
	fmt.Fprintln(w, "all translation files are consistent")
	return 0
}

// findUsedKeys scans non-test .go files below root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range usedKeyRe.FindAllStringSubmatch(line, -1) {
				keys[m[1]] = append(keys[m[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML catalog and returns its message IDs.
// Nested maps are flattened with dots, the way go-i18n reads them.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, v, keys)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
