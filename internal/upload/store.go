// Package upload 封面图存储
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store 管理上传目录内的封面图文件
// 文件名由服务端随机生成，客户端提供的名字只用来取扩展名
type Store struct {
	dir         string
	allowedExts map[string]bool
}

func NewStore(dir string, allowedExts []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	exts := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		exts[strings.ToLower(ext)] = true
	}

	return &Store{dir: dir, allowedExts: exts}, nil
}

// Allowed 扩展名是否在允许集合内（大小写不敏感）
func (s *Store) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return s.allowedExts[ext]
}

// Save 保存上传文件，返回存储文件名
// 文件缺失或扩展名不合法时返回空串（不算错误，调用方按无图处理）
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || !s.Allowed(fh.Filename) {
		return "", nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}

	if err := dst.Close(); err != nil {
		return "", err
	}

	return name, nil
}

// Remove 删除存储文件，文件不存在不算错误
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path 存储文件的磁盘路径，filepath.Base 防止路径穿越
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
