// Package photo stores event photos in a gocloud.dev blob bucket.
package photo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const objectSuffix = "-event.jpg"

// maxPixels bounds the decoded size of an upload. A few kilobytes of PNG can
// declare dimensions that need gigabytes once decoded.
const maxPixels = 40_000_000

// allowedTypes is the media type allow-list for uploads.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// StoreParams holds dependencies for the photo store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Store implements service.PhotoStore over a blob bucket.
type Store struct {
	bucket        *blob.Bucket
	publicBaseURL string
	prefix        string
	maxBytes      int64
	maxDimension  int
	maxPixels     int
	quality       int
	now           func() time.Time
	logger        *slog.Logger
}

// NewStore opens the configured bucket and closes it on shutdown
func NewStore(params StoreParams) (*Store, error) {
	cfg := params.Config.Photos

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open photo bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Photo store ready",
		slog.String("bucket", cfg.BucketURL),
		slog.String("max_size", util.FormatBytes(cfg.MaxBytes)),
	)

	return newStore(bucket, cfg, params.Logger), nil
}

func newStore(bucket *blob.Bucket, cfg config.PhotosConfig, logger *slog.Logger) *Store {
	return &Store{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		prefix:        strings.Trim(cfg.Prefix, "/"),
		maxBytes:      cfg.MaxBytes,
		maxDimension:  cfg.MaxDimension,
		maxPixels:     maxPixels,
		quality:       cfg.Quality,
		now:           time.Now,
		logger:        logger,
	}
}

// Validate checks the declared type, the size and the sniffed content
func (s *Store) Validate(file *service.PhotoFile) error {
	if file == nil || len(file.Data) == 0 {
		return domainerrors.NewValidationError("Please select an image file")
	}

	declared := normalizeType(file.ContentType)
	if declared == "" {
		declared = normalizeType(mimetype.Detect(file.Data).String())
	}
	if _, ok := allowedTypes[declared]; !ok {
		return domainerrors.NewValidationError("Please select a valid image file (JPEG, PNG, or WebP)")
	}

	if file.Size() > s.maxBytes {
		return domainerrors.NewValidationError(
			fmt.Sprintf("Image size must be less than %s", util.FormatBytes(s.maxBytes)))
	}

	sniffed := normalizeType(mimetype.Detect(file.Data).String())
	if _, ok := allowedTypes[sniffed]; !ok {
		return domainerrors.NewValidationError("The file content is not a JPEG, PNG, or WebP image")
	}

	return nil
}

// Upload validates, downsizes and stores the photo, returning its public URL
func (s *Store) Upload(ctx context.Context, file *service.PhotoFile, ownerID, subjectID string) (string, error) {
	if err := s.Validate(file); err != nil {
		return "", err
	}
	if ownerID == "" || subjectID == "" {
		return "", errors.Errorf("photo owner and subject are required")
	}

	encoded, err := s.compress(file.Data)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return "", err
		}

		return "", errors.Join(domainerrors.ErrPhotoStoreFailed.WithDetails("the image could not be processed"), err)
	}

	key := path.Join(s.prefix, ownerID, subjectID, fmt.Sprintf("%d%s", s.now().UnixMilli(), objectSuffix))
	if err := s.bucket.WriteAll(ctx, key, encoded, &blob.WriterOptions{ContentType: "image/jpeg"}); err != nil {
		return "", errors.Join(domainerrors.ErrPhotoStoreFailed, errors.Wrapf(err, "write %s", key))
	}

	s.logger.Info("Photo uploaded",
		slog.String("key", key),
		slog.String("original_size", util.FormatBytes(file.Size())),
		slog.String("stored_size", util.FormatBytes(int64(len(encoded)))),
	)

	return s.urlFor(key), nil
}

// Delete removes a photo this store owns. Failures are logged only.
func (s *Store) Delete(ctx context.Context, photoURL string) {
	key, ok := s.keyFor(photoURL)
	if !ok {
		s.logger.Debug("Skipping delete of foreign photo URL", slog.String("url", photoURL))

		return
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to delete photo",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Photo deleted", slog.String("key", key))
}

// Owns reports whether photoURL was issued by this store
func (s *Store) Owns(photoURL string) bool {
	_, ok := s.keyFor(photoURL)

	return ok
}

// Open streams a stored photo. Keys outside the photo layout are reported as missing.
func (s *Store) Open(ctx context.Context, key string) (*service.PhotoObject, error) {
	if !s.validKey(key) {
		return nil, domainerrors.ErrPhotoNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Join(domainerrors.ErrPhotoStoreFailed, errors.Wrapf(err, "open %s", key))
	}

	contentType := reader.ContentType()
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return &service.PhotoObject{
		ContentType: contentType,
		Size:        reader.Size(),
		Body:        reader,
	}, nil
}

// compress downsizes the longest edge to maxDimension and encodes JPEG.
// Images declaring more than maxPixels are rejected before decoding.
func (s *Store) compress(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image header")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > int64(s.maxPixels) {
		return nil, domainerrors.NewValidationError("The image dimensions are too large")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	bounds := src.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), s.maxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}

	return buf.Bytes(), nil
}

func (s *Store) urlFor(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}

func (s *Store) keyFor(photoURL string) (string, bool) {
	rest, ok := strings.CutPrefix(photoURL, s.publicBaseURL+"/")
	if !ok || rest == "" {
		return "", false
	}

	key, err := url.PathUnescape(rest)
	if err != nil || !s.validKey(key) {
		return "", false
	}

	return key, true
}

// validKey matches the layout Upload writes: <prefix>/<owner>/<subject>/<ms>-event.jpg.
func (s *Store) validKey(key string) bool {
	if s.prefix != "" && !strings.HasPrefix(key, s.prefix+"/") {
		return false
	}

	return strings.HasSuffix(key, objectSuffix) && !strings.Contains(key, "..")
}

// scaledSize fits width x height within limit on the longest edge, never upscaling.
func scaledSize(width, height, limit int) (int, int) {
	longest := max(width, height)
	if limit <= 0 || longest <= limit {
		return width, height
	}

	ratio := float64(limit) / float64(longest)

	return max(1, int(float64(width)*ratio+0.5)), max(1, int(float64(height)*ratio+0.5))
}

func normalizeType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}
