package filestore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// S3Options configures an S3Uploader. Endpoint switches to path-style
// addressing for S3 compatible services such as MinIO.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
	Folder    string
}

// S3Uploader stores files in an S3 bucket
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	folder    string
	publicURL string
}

// NewS3Uploader loads AWS configuration and builds the client
func NewS3Uploader(ctx context.Context, opts S3Options) (*S3Uploader, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:    client,
		bucket:    opts.Bucket,
		region:    opts.Region,
		folder:    opts.Folder,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
	}, nil
}

// Upload stores the file under a random key inside the configured folder
func (u *S3Uploader) Upload(ctx context.Context, file File) (*Object, error) {
	if len(file.Data) == 0 {
		return nil, ErrEmptyPayload
	}

	mtype := mimetype.Detect(file.Data)
	ext := path.Ext(file.Name)
	if ext == "" {
		ext = mtype.Extension()
	}

	name := file.Name
	if name == "" {
		name = "completion-document" + ext
	}

	key := path.Join(u.folder, uuid.NewString()+ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentLength: aws.Int64(int64(len(file.Data))),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	return &Object{
		URL:  u.objectURL(key),
		Name: name,
		Size: int64(len(file.Data)),
	}, nil
}

func (u *S3Uploader) objectURL(key string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
