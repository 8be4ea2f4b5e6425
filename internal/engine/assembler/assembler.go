// Package assembler builds the multipart upload request for packaged symbols.
package assembler

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assemble builds the request for req. Apple requests carry one part per artifact,
// numbered from 1 in the given order; android requests carry the mapping file at req.Path.
func Assemble(req domain.UploadRequest, artifacts []*domain.PackagedArtifact) (*domain.RequestOptions, error) {
	var parts []domain.Part

	switch req.Platform {
	case domain.PlatformAndroid:
		parts = append(parts, domain.Part{
			Name:        domain.PartAndroidMapping,
			FileName:    filepath.Base(req.Path),
			ContentType: domain.ContentTypeOctetStream,
			Path:        req.Path,
		})
	case domain.PlatformApple:
		if len(artifacts) == 0 {
			return nil, zerr.Wrap(domain.ErrNoSymbolFiles, "nothing to assemble")
		}
		for i, a := range artifacts {
			parts = append(parts, domain.Part{
				Name:        fmt.Sprintf("mappingFile-%d", i+1),
				FileName:    filepath.Base(a.ArchivePath),
				ContentType: domain.ContentTypeGzip,
				Header:      map[string]string{domain.HeaderContentUUID: a.UUID},
				Path:        a.ArchivePath,
			})
		}
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, "cannot assemble request"), "platform", string(req.Platform))
	}

	if req.InternalAppVersion != "" {
		parts = append(parts, domain.Part{
			Name:  domain.FieldInternalAppVersion,
			Value: req.InternalAppVersion,
		})
	}

	body := newLazyBody(parts)

	return &domain.RequestOptions{
		SearchParams: url.Values{"force": []string{strconv.FormatBool(req.Force)}},
		Headers: map[string]string{
			"Authorization": "Bearer " + req.Token,
			"Content-Type":  body.ContentType(),
		},
		Parts: parts,
		Body:  body,
	}, nil
}
