// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/serializer"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	// DefaultMaxFileSize is the default maximum data file size (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	sourceEmbedded = "embedded"
	sourceExternal = "external"
	sourceRemote   = "remote"
)

// dataExtensions are tried in order when resolving a data file by base name.
var dataExtensions = []string{".yaml", ".yml", ".json"}

// DataProvider abstracts where catalog data files come from.
type DataProvider interface {
	// ReadFile reads a data file by name (e.g. "drinks.yaml"). A missing
	// file is reported as a NOT_FOUND structured error.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// Source describes where data comes from (for logs).
	Source() string
}

// EmbeddedDataProvider serves the catalog compiled into the binary.
type EmbeddedDataProvider struct {
	fs     fs.FS
	prefix string
}

// NewEmbeddedDataProvider creates a provider from an embedded filesystem.
func NewEmbeddedDataProvider(efs fs.FS, prefix string) *EmbeddedDataProvider {
	return &EmbeddedDataProvider{
		fs:     efs,
		prefix: prefix,
	}
}

// ReadFile reads a file from the embedded filesystem.
func (p *EmbeddedDataProvider) ReadFile(_ context.Context, name string) ([]byte, error) {
	fullPath := path.Join(p.prefix, name)
	slog.Debug("reading file from embedded provider", "name", name, "fullPath", fullPath)
	data, err := fs.ReadFile(p.fs, fullPath)
	if err != nil {
		return nil, missingOr(err, name, sourceEmbedded)
	}
	return data, nil
}

// Source returns "embedded".
func (p *EmbeddedDataProvider) Source() string { return sourceEmbedded }

// DirDataProvider serves catalog files from a local directory.
type DirDataProvider struct {
	dir         string
	maxFileSize int64
}

// NewDirDataProvider validates dir and returns a provider reading from it.
// Returns an error if the directory doesn't exist or isn't a directory.
func NewDirDataProvider(dir string) (*DirDataProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound,
			fmt.Sprintf("external data directory not found: %s", dir), err)
	}
	if !info.IsDir() {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data path is not a directory: %s", dir))
	}
	return &DirDataProvider{dir: dir, maxFileSize: DefaultMaxFileSize}, nil
}

// ReadFile reads a file from the data directory. Names that escape the
// directory, symlinks, and oversized files are rejected.
func (p *DirDataProvider) ReadFile(_ context.Context, name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("path traversal detected: %s", name))
	}

	full := filepath.Join(p.dir, name)
	info, err := os.Lstat(full)
	if err != nil {
		return nil, missingOr(err, name, sourceExternal)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("symlinks not allowed: %s", name))
	}
	if info.Size() > p.maxFileSize {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("file too large (%d bytes, max %d): %s", info.Size(), p.maxFileSize, name))
	}

	slog.Debug("reading file from data directory", "path", full)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, missingOr(err, name, sourceExternal)
	}
	return data, nil
}

// Source returns "external".
func (p *DirDataProvider) Source() string { return sourceExternal }

// RemoteDataProvider serves catalog files from an http(s) base URL.
type RemoteDataProvider struct {
	baseURL string
	reader  *serializer.HttpReader
}

// NewRemoteDataProvider returns a provider fetching files relative to baseURL.
func NewRemoteDataProvider(baseURL string, opts ...serializer.HttpReaderOption) *RemoteDataProvider {
	return &RemoteDataProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		reader:  serializer.NewHttpReader(opts...),
	}
}

// ReadFile fetches baseURL/name.
func (p *RemoteDataProvider) ReadFile(ctx context.Context, name string) ([]byte, error) {
	u := p.baseURL + "/" + name
	slog.Debug("fetching remote data file", "url", u)
	return p.reader.ReadWithContext(ctx, u)
}

// Source returns "remote".
func (p *RemoteDataProvider) Source() string { return sourceRemote }

// NewDataProvider picks a provider for source: the embedded catalog when
// source is empty, a remote provider for http(s) URLs, and a directory
// provider otherwise.
func NewDataProvider(source string) (DataProvider, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return NewEmbeddedDataProvider(dataFS, "data"), nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return NewRemoteDataProvider(source), nil
	default:
		return NewDirDataProvider(source)
	}
}

func missingOr(err error, name, source string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound, "data file not found", err,
			map[string]any{"file": name, "source": source})
	}
	return cnserrors.WrapWithContext(cnserrors.ErrCodeInternal, "failed to read data file", err,
		map[string]any{"file": name, "source": source})
}
