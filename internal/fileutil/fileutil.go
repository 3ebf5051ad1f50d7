// Package fileutil copies sound files between packs with integrity checks.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst, creating dst's parent folders and keeping the
// source's permission bits and modification time.
func CopyFile(src, dst string) error {
	_, err := copyHashed(src, dst)
	return err
}

// CopyFileVerified copies src like CopyFile, then re-reads dst and compares
// its size and SHA-256 digest with what was read from src. dst is removed
// on mismatch.
func CopyFileVerified(src, dst string) error {
	want, err := copyHashed(src, dst)
	if err != nil {
		return err
	}

	got, err := digestFile(dst)
	if err != nil {
		return fmt.Errorf("verify copy: %w", err)
	}
	if got.size != want.size {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", want.size, got.size)
	}
	if !bytes.Equal(got.sum, want.sum) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}

type digest struct {
	sum  []byte
	size int64
}

func copyHashed(src, dst string) (digest, error) {
	in, err := os.Open(src)
	if err != nil {
		return digest{}, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return digest{}, fmt.Errorf("stat source: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return digest{}, err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return digest{}, err
	}

	hasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, hasher))
	if err != nil {
		_ = out.Close()
		return digest{}, err
	}
	if err := out.Close(); err != nil {
		return digest{}, err
	}
	if written != info.Size() {
		_ = os.Remove(dst)
		return digest{}, fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return digest{}, err
	}
	return digest{sum: hasher.Sum(nil), size: written}, nil
}

func digestFile(path string) (digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return digest{}, err
	}
	defer file.Close()

	hasher := sha256.New()
	size, err := io.Copy(hasher, file)
	if err != nil {
		return digest{}, err
	}
	return digest{sum: hasher.Sum(nil), size: size}, nil
}
