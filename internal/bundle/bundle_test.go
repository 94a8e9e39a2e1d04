package bundle

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "kernel", "base", "lib", "a.jar"), "")
	writeFile(t, filepath.Join(root, "kernel", "scala", "kernel.json"), "{}")

	entries, err := Dir{Root: root}.List(KernelDir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if strings.Join(names, ",") != "base,scala" {
		t.Errorf("List = %v, want [base scala]", names)
	}
}

func TestDirList_Missing(t *testing.T) {
	_, err := Dir{Root: t.TempDir()}.List(KernelDir)
	if err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}

func TestDirReadText(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "kernel", "scala", "kernel.json"), `{"argv": ["__PATH__"]}`)

	got, err := Dir{Root: root}.ReadText("kernel/scala/kernel.json")
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != `{"argv": ["__PATH__"]}` {
		t.Errorf("ReadText = %q", got)
	}

	if _, err := (Dir{Root: root}).ReadText("kernel/missing/kernel.json"); err == nil {
		t.Error("expected error for missing resource, got nil")
	}
}

func TestDirPath(t *testing.T) {
	d := Dir{Root: "/opt/bundle"}
	got := d.Path("kernel/base/lib/*")
	want := filepath.Join("/opt/bundle", "kernel", "base", "lib", "*")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestLocate_Explicit(t *testing.T) {
	root := t.TempDir()
	d, err := Locate(root)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if d.Root != root {
		t.Errorf("Root = %q, want %q", d.Root, root)
	}
}

func TestLocate_ExplicitMissing(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing explicit directory, got nil")
	}
}

func TestLocate_WorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	if err := os.MkdirAll(filepath.Join(wd, "static"), 0755); err != nil {
		t.Fatal(err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	d, err := Locate("")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	// The test binary's release dir does not exist, so ./static wins.
	if filepath.Base(d.Root) != "static" {
		t.Errorf("Root = %q, want a static directory", d.Root)
	}
}
