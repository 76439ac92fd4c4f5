package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	ErrMissingBucket  = errors.New("missing upload bucket")
	ErrInvalidRef     = errors.New("invalid transient file reference")
	ErrMissingContext = errors.New("upload requires an owning client")
)

// S3API is the subset of *s3.Client the upload service uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds explicit construction parameters for the upload service.
type Config struct {
	Bucket string
	Region string
	// Endpoint enables an S3-compatible backend (e.g. MinIO) for local runs.
	Endpoint string
	// StagingDir is the local directory transient references resolve under.
	StagingDir string
	// PublicBaseURL overrides the generated object URL prefix when set.
	PublicBaseURL string
}

// S3UploadService materializes transient staged files into durable S3
// objects. Object keys are laid out per owning record:
//
//	<tenant>/clientes/<clienteId>[/projetos/<projetoId>|/visitas/<visitaId>]/<uuid><ext>
type S3UploadService struct {
	client S3API
	cfg    Config
}

var _ interfaces.IUploadService = (*S3UploadService)(nil)

func NewS3UploadService(client S3API, cfg Config) (*S3UploadService, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.StagingDir == "" {
		cfg.StagingDir = os.TempDir()
	}
	return &S3UploadService{client: client, cfg: cfg}, nil
}

// NewS3Client creates an S3 client from the ambient AWS environment.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3UploadService) Materialize(ctx context.Context, in interfaces.UploadInput) (interfaces.UploadOutput, error) {
	if in.Contexto.ClienteID == "" {
		return interfaces.UploadOutput{}, ErrMissingContext
	}

	local, err := s.resolveRef(in.Referencia)
	if err != nil {
		return interfaces.UploadOutput{}, err
	}

	f, err := os.Open(local)
	if err != nil {
		return interfaces.UploadOutput{}, fmt.Errorf("open staged file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return interfaces.UploadOutput{}, fmt.Errorf("stat staged file: %w", err)
	}

	ext := filepath.Ext(in.NomeArquivo)
	if ext == "" {
		ext = filepath.Ext(local)
	}
	key := s.objectKey(in, ext)

	put := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(st.Size()),
	}
	if in.ContentType != "" {
		put.ContentType = aws.String(in.ContentType)
	}

	if _, err := s.client.PutObject(ctx, put); err != nil {
		log.Printf("[upload][s3] put failed key=%s err=%v", key, err)
		return interfaces.UploadOutput{}, fmt.Errorf("upload object: %w", err)
	}
	log.Printf("[upload][s3] materialized key=%s size=%d", key, st.Size())

	return interfaces.UploadOutput{
		URL:     s.objectURL(key),
		Caminho: key,
		Formato: strings.TrimPrefix(ext, "."),
		Tamanho: st.Size(),
	}, nil
}

// resolveRef confines the transient reference to the staging directory.
func (s *S3UploadService) resolveRef(ref string) (string, error) {
	if ref == "" || filepath.IsAbs(ref) {
		return "", ErrInvalidRef
	}
	clean := filepath.Clean(ref)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidRef
	}
	return filepath.Join(s.cfg.StagingDir, clean), nil
}

func (s *S3UploadService) objectKey(in interfaces.UploadInput, ext string) string {
	parts := []string{in.TenantID, "clientes", in.Contexto.ClienteID}
	switch {
	case in.Contexto.ProjetoID != "":
		parts = append(parts, "projetos", in.Contexto.ProjetoID)
	case in.Contexto.VisitaID != "":
		parts = append(parts, "visitas", in.Contexto.VisitaID)
	}
	parts = append(parts, uuid.NewString()+ext)
	return path.Join(parts...)
}

func (s *S3UploadService) objectURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
