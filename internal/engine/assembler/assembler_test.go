package assembler_test

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/engine/assembler"
)

type parsedPart struct {
	name        string
	fileName    string
	contentType string
	uuid        string
	data        string
}

func readParts(t *testing.T, opts *domain.RequestOptions) []parsedPart {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(opts.Headers["Content-Type"])
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	defer opts.Body.Close()
	mr := multipart.NewReader(opts.Body, params["boundary"])

	var parts []parsedPart
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, parsedPart{
			name:        p.FormName(),
			fileName:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			uuid:        p.Header.Get(domain.HeaderContentUUID),
			data:        string(data),
		})
	}
	return parts
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAssemble_Android(t *testing.T) {
	path := writeTemp(t, "mapping.txt", "com.example.A -> a:\n")
	req := domain.UploadRequest{
		Path:     path,
		Token:    "secret",
		Platform: domain.PlatformAndroid,
	}

	opts, err := assembler.Assemble(req, nil)
	require.NoError(t, err)

	assert.Equal(t, "false", opts.SearchParams.Get("force"))
	assert.Equal(t, "Bearer secret", opts.Headers["Authorization"])
	assert.Equal(t, []parsedPart{{
		name:        "mappingFile",
		fileName:    "mapping.txt",
		contentType: domain.ContentTypeOctetStream,
		data:        "com.example.A -> a:\n",
	}}, readParts(t, opts))
}

func TestAssemble_Apple(t *testing.T) {
	artifacts := []*domain.PackagedArtifact{
		{UUID: "UUID-A", ArchivePath: writeTemp(t, "App.tar.gz", "archive-a")},
		{UUID: "UUID-B", ArchivePath: writeTemp(t, "Widget.tar.gz", "archive-b")},
		{UUID: "UUID-C", ArchivePath: writeTemp(t, "Lib.tar.gz", "archive-c")},
	}
	req := domain.UploadRequest{
		Token:              "secret",
		Platform:           domain.PlatformApple,
		InternalAppVersion: "42",
		Force:              true,
	}

	opts, err := assembler.Assemble(req, artifacts)
	require.NoError(t, err)

	assert.Equal(t, "force=true", opts.SearchParams.Encode())
	require.Len(t, opts.Parts, 4)

	parts := readParts(t, opts)
	assert.Equal(t, []parsedPart{
		{name: "mappingFile-1", fileName: "App.tar.gz", contentType: domain.ContentTypeGzip, uuid: "UUID-A", data: "archive-a"},
		{name: "mappingFile-2", fileName: "Widget.tar.gz", contentType: domain.ContentTypeGzip, uuid: "UUID-B", data: "archive-b"},
		{name: "mappingFile-3", fileName: "Lib.tar.gz", contentType: domain.ContentTypeGzip, uuid: "UUID-C", data: "archive-c"},
		{name: "internalAppVersion", data: "42"},
	}, parts)
}

func TestAssemble_AppleWithoutArtifacts(t *testing.T) {
	_, err := assembler.Assemble(domain.UploadRequest{Platform: domain.PlatformApple}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSymbolFiles))
}

func TestAssemble_UnknownPlatform(t *testing.T) {
	_, err := assembler.Assemble(domain.UploadRequest{Platform: "windows"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}

func TestAssemble_BodyIsLazy(t *testing.T) {
	path := writeTemp(t, "mapping.txt", "late content")
	opts, err := assembler.Assemble(domain.UploadRequest{Path: path, Platform: domain.PlatformAndroid}, nil)
	require.NoError(t, err)

	// The file is read only when the body is consumed.
	require.NoError(t, os.WriteFile(path, []byte("updated content"), 0o600))

	parts := readParts(t, opts)
	require.Len(t, parts, 1)
	assert.Equal(t, "updated content", parts[0].data)
}

func TestAssemble_MissingFileFailsRead(t *testing.T) {
	opts, err := assembler.Assemble(domain.UploadRequest{
		Path:     filepath.Join(t.TempDir(), "missing.txt"),
		Platform: domain.PlatformAndroid,
	}, nil)
	require.NoError(t, err)
	defer opts.Body.Close()

	_, err = io.ReadAll(opts.Body)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAssemblyFailed))
}

func TestAssemble_CloseBeforeRead(t *testing.T) {
	path := writeTemp(t, "mapping.txt", strings.Repeat("x", 1<<20))
	opts, err := assembler.Assemble(domain.UploadRequest{Path: path, Platform: domain.PlatformAndroid}, nil)
	require.NoError(t, err)

	require.NoError(t, opts.Body.Close())

	_, err = opts.Body.Read(make([]byte, 16))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
