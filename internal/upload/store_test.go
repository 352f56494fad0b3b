package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testExts = []string{"png", "jpg", "jpeg", "gif", "webp"}

// fileHeader builds a real multipart.FileHeader the way gin would hand it over
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("cover_image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["cover_image"][0]
}

// TestStore_Allowed 扩展名白名单检查
func TestStore_Allowed(t *testing.T) {
	store, err := NewStore(t.TempDir(), testExts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"pic.JPEG", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"evil.exe", false},
		{"script.php", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := store.Allowed(tt.filename); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// TestStore_Save 保存合法文件并生成服务端文件名
func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, testExts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	name, err := store.Save(fileHeader(t, "My Photo.PNG", "fake image bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name == "" {
		t.Fatal("Save returned empty name for allowed file")
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("stored name %q should carry lowercased .png extension", name)
	}
	if strings.Contains(name, "My Photo") {
		t.Errorf("stored name %q must not reuse the client filename", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q, want %q", data, "fake image bytes")
	}
}

// TestStore_Save_Rejected 非法扩展名与缺失文件都按无图处理
func TestStore_Save_Rejected(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, testExts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	name, err := store.Save(fileHeader(t, "evil.exe", "MZ"))
	if err != nil {
		t.Fatalf("Save rejected file: %v", err)
	}
	if name != "" {
		t.Errorf("Save(evil.exe) = %q, want empty", name)
	}

	name, err = store.Save(nil)
	if err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	if name != "" {
		t.Errorf("Save(nil) = %q, want empty", name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("upload dir should stay empty, has %d entries", len(entries))
	}
}

// TestStore_Remove 删除已有文件，文件不存在不算错误
func TestStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, testExts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	name, err := store.Save(fileHeader(t, "cover.jpg", "bytes"))
	if err != nil || name == "" {
		t.Fatalf("Save: name=%q err=%v", name, err)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove existing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("file %q should be gone after Remove", name)
	}

	if err := store.Remove("never-existed.png"); err != nil {
		t.Errorf("Remove missing file should not error, got %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Errorf("Remove empty name should not error, got %v", err)
	}
}

// TestStore_Path 路径穿越被 base 归一化挡住
func TestStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, testExts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got := store.Path("../../etc/passwd")
	want := filepath.Join(dir, "passwd")
	if got != want {
		t.Errorf("Path traversal: got %q, want %q", got, want)
	}
}
