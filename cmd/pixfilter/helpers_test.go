package main

import (
	"os"
	"path/filepath"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/host"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(filepath.Clean(path), data, 0o600)
}

func readRawZstdFile(path string, w, h int) (*pixfilter.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return host.ReadRawZstd(f, w, h)
}
