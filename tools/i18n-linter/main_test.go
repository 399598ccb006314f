// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

const source = `package foo
func f() {
	_ = i18n.T("stats.size", 1)
	_ = i18n.T("stats.empty")
}`

func TestRun_Consistent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ui/a.go":                       source,
		"internal/i18n/locales/en.yaml": "\"stats.size\": \"Size: %d\"\n\"stats.empty\": \"Empty.\"\n",
		"internal/i18n/locales/de.yaml": "\"stats.size\": \"Größe: %d\"\n\"stats.empty\": \"Leer.\"\n",
		"_examples/other/b.go":          `package x; var _ = i18n.T("ignored.key")`,
		"tools/linter/c.go":             `package y; var _ = i18n.T("tool.key")`,
		"ui/a_test.go":                  `package foo; var _ = i18n.T("test.key")`,
	})
	var out bytes.Buffer
	if code := run(root, &out); code != 0 {
		t.Fatalf("expected exit 0, got %d:\n%s", code, out.String())
	}
}

func TestRun_MissingAndUndefined(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ui/a.go":                       source,
		"internal/i18n/locales/en.yaml": "\"stats.size\": \"Size: %d\"\n\"stats.old\": \"Old\"\n",
		"internal/i18n/locales/de.yaml": "\"stats.old\": \"Alt\"\n",
	})
	var out bytes.Buffer
	if code := run(root, &out); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	for _, want := range []string{
		"undefined: stats.empty",
		"orphaned: stats.old",
		"missing in de.yaml: stats.size",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLoadKeysFromLocale_Nested(t *testing.T) {
	root := writeTree(t, map[string]string{
		"nested.yaml": "store:\n  saved: \"Saved\"\n  none: \"None\"\n\"flat.key\": \"x\"\n",
	})
	keys, err := loadKeysFromLocale(filepath.Join(root, "nested.yaml"))
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	for _, k := range []string{"store.saved", "store.none", "flat.key"} {
		if _, ok := keys[k]; !ok {
			t.Errorf("expected key %s", k)
		}
	}
}
