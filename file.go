// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package params

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// File is the handle for an uploaded file, passed through the engine
// uninterpreted. It wraps multipart.FileHeader; the underlying resource is
// owned by the serving framework, and the engine never retains or closes it.
//
// The filename is sanitized to its base name to prevent path traversal.
//
// Example:
//
//	avatar := validated.File("avatar")
//	fmt.Printf("received %s (%d bytes, %s)\n", avatar.Name, avatar.Size, avatar.ContentType)
//	avatar.Save("./uploads/" + avatar.Name)
type File struct {
	// Name is the original filename, reduced to its base name.
	Name string

	// Size is the file size in bytes.
	Size int64

	// ContentType is the MIME type from the part's Content-Type header,
	// defaulting to application/octet-stream.
	ContentType string

	header *multipart.FileHeader
}

// NewFile wraps a multipart.FileHeader, sanitizing the filename.
func NewFile(fh *multipart.FileHeader) *File {
	name := filepath.Base(fh.Filename)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &File{
		Name:        name,
		Size:        fh.Size,
		ContentType: contentType,
		header:      fh,
	}
}

// Bytes reads the entire file contents into memory. Use Open for large
// files to avoid memory pressure.
func (f *File) Bytes() ([]byte, error) {
	src, err := f.header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	return io.ReadAll(src)
}

// Open returns a reader for streaming the file contents. The caller must
// close the returned ReadCloser.
func (f *File) Open() (io.ReadCloser, error) {
	src, err := f.header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return src, nil
}

// Save writes the file to the destination path, creating parent directories
// as needed. The destination is cleaned, but callers should still confine
// it to their intended upload directory.
func (f *File) Save(dst string) (err error) {
	dst = filepath.Clean(dst)

	src, err := f.header.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close source file: %w", cerr)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		// Close can fail while flushing buffered data; the file may be
		// incomplete even though the copy succeeded.
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

// Ext returns the file extension including the dot, or "" when the name has
// no extension.
func (f *File) Ext() string {
	return filepath.Ext(f.Name)
}
