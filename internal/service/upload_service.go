package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/config"
	"estateadmin/console/internal/ids"
	"estateadmin/console/internal/media/sniffer"
	"estateadmin/console/internal/media/svg"
	"estateadmin/console/internal/storage"
)

var (
	ErrTooManyImages = errors.New("too many images")
	ErrImageTooLarge = errors.New("image too large")
	ErrNotAnImage    = errors.New("file is not a supported image")
	ErrForeignImage  = errors.New("staged image belongs to another session")
)

// StagingStore is the object storage the upload service keeps selected images
// in between a failed submit and the next attempt.
type StagingStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (storage.Object, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}

// Batch is the image set of one property submit.
type Batch struct {
	// Staged are the object keys kept for a retry, empty when staging is off.
	Staged []string
	Files  []apiclient.ImageFile
}

type Preview struct {
	ID  string
	URL string
}

type UploadService struct {
	store StagingStore
	cfg   config.UploadConfig
	log   zerolog.Logger
}

// NewUploadService accepts a nil store; images are then forwarded straight
// from the submitted form and not kept across failed submits.
func NewUploadService(store StagingStore, cfg config.UploadConfig, log zerolog.Logger) *UploadService {
	return &UploadService{store: store, cfg: cfg, log: log}
}

func (s *UploadService) StagingEnabled() bool {
	return s.store != nil
}

// Accept validates newly selected files and merges them with the images staged
// by earlier attempts of the same form.
func (s *UploadService) Accept(ctx context.Context, sessionID string, headers []*multipart.FileHeader, staged []string) (Batch, error) {
	staged = s.ownedOnly(sessionID, staged)
	if s.cfg.MaxFiles > 0 && len(headers)+len(staged) > s.cfg.MaxFiles {
		return Batch{}, fmt.Errorf("%w: at most %d", ErrTooManyImages, s.cfg.MaxFiles)
	}

	var batch Batch
	for _, key := range staged {
		obj, err := s.store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				s.log.Debug().Str("key", key).Msg("staged image expired")
				continue
			}
			return Batch{}, fmt.Errorf("load staged image: %w", err)
		}
		batch.Staged = append(batch.Staged, key)
		batch.Files = append(batch.Files, apiclient.ImageFile{
			Filename:    path.Base(key),
			ContentType: obj.ContentType,
			Data:        obj.Data,
		})
	}

	for _, header := range headers {
		file, err := s.read(header)
		if err != nil {
			return Batch{}, err
		}
		if s.store != nil {
			key := path.Join(sessionID, ids.New(), file.Filename)
			if err := s.store.Put(ctx, key, file.Data, file.ContentType); err != nil {
				return Batch{}, fmt.Errorf("stage image: %w", err)
			}
			batch.Staged = append(batch.Staged, key)
		}
		batch.Files = append(batch.Files, file)
	}

	return batch, nil
}

func (s *UploadService) read(header *multipart.FileHeader) (apiclient.ImageFile, error) {
	if s.cfg.MaxBytes > 0 && header.Size > s.cfg.MaxBytes {
		return apiclient.ImageFile{}, fmt.Errorf("%w: %s", ErrImageTooLarge, header.Filename)
	}

	f, err := header.Open()
	if err != nil {
		return apiclient.ImageFile{}, fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return apiclient.ImageFile{}, fmt.Errorf("read %s: %w", header.Filename, err)
	}

	result, err := sniffer.Detect(data)
	if err != nil {
		return apiclient.ImageFile{}, fmt.Errorf("%w: %s", ErrNotAnImage, header.Filename)
	}
	if !sniffer.Consistent(sniffer.DeclaredType(header.Header), result) {
		return apiclient.ImageFile{}, fmt.Errorf("%w: %s content does not match its type", ErrNotAnImage, header.Filename)
	}

	if result.Type == sniffer.TypeSVG {
		clean, err := svg.Sanitize(data)
		if err != nil {
			return apiclient.ImageFile{}, fmt.Errorf("sanitize %s: %w", header.Filename, err)
		}
		data = clean
	}

	return apiclient.ImageFile{
		Filename:    safeFilename(header.Filename, result.Extension()),
		ContentType: result.MIME,
		Data:        data,
	}, nil
}

// Previews presigns the staged images so a re-rendered form can show them.
func (s *UploadService) Previews(ctx context.Context, sessionID string, staged []string) []Preview {
	if s.store == nil {
		return nil
	}
	var out []Preview
	for _, key := range s.ownedOnly(sessionID, staged) {
		u, err := s.store.PresignGet(ctx, key, s.cfg.PreviewTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("presign staged image failed")
			continue
		}
		out = append(out, Preview{ID: key, URL: u})
	}
	return out
}

// Release drops staged copies once the submit carrying them succeeded.
func (s *UploadService) Release(ctx context.Context, sessionID string, staged []string) {
	if s.store == nil {
		return
	}
	for _, key := range s.ownedOnly(sessionID, staged) {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("release staged image failed")
		}
	}
}

// Purge removes staged images older than the staging TTL and returns how many
// were removed.
func (s *UploadService) Purge(ctx context.Context, now time.Time) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	keys, err := s.store.ListOlderThan(ctx, now.Add(-s.cfg.StagingTTL))
	removed := 0
	for _, key := range keys {
		if rerr := s.store.Remove(ctx, key); rerr != nil {
			s.log.Warn().Err(rerr).Str("key", key).Msg("purge staged image failed")
			continue
		}
		removed++
	}
	return removed, err
}

func (s *UploadService) ownedOnly(sessionID string, keys []string) []string {
	if s.store == nil || sessionID == "" {
		return nil
	}
	prefix := sessionID + "/"
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, prefix) || strings.Contains(key, "..") {
			s.log.Warn().Err(ErrForeignImage).Str("key", key).Msg("staged image ignored")
			continue
		}
		out = append(out, key)
	}
	return out
}

func safeFilename(name, ext string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" || name == "." {
		name = "image"
	}
	return name + "." + ext
}
