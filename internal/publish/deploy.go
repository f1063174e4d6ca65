package publish

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Uploader is the part of manager.Uploader a deploy needs
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Deployer uploads a built output directory to an S3 bucket
type Deployer struct {
	uploader Uploader
	bucket   string
	prefix   string
	workers  int
}

func NewDeployer(uploader Uploader, bucket, prefix string) *Deployer {
	return &Deployer{uploader: uploader, bucket: bucket, prefix: prefix, workers: defaultWorkers}
}

// NewS3Deployer uses the default AWS credential chain
func NewS3Deployer(ctx context.Context, bucket, prefix string) (*Deployer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	return NewDeployer(manager.NewUploader(s3.NewFromConfig(cfg)), bucket, prefix), nil
}

// Deploy uploads every file under dir and returns how many were sent
func (d *Deployer) Deploy(ctx context.Context, fs afero.Fs, dir string) (int, error) {
	log.Infof("🚀 Deploying %s to s3://%s/%s", dir, d.bucket, d.prefix)

	var uploaded atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	err := afero.Walk(fs, dir, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, name)
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := d.upload(ctx, fs, name, d.key(rel)); err != nil {
				return err
			}
			uploaded.Add(1)
			return nil
		})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return 0, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	log.Infof("✅ Deployment complete: %d files", uploaded.Load())
	return int(uploaded.Load()), nil
}

func (d *Deployer) key(rel string) string {
	return path.Join(d.prefix, filepath.ToSlash(rel))
}

func (d *Deployer) upload(ctx context.Context, fs afero.Fs, name, key string) error {
	file, err := fs.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", name, err)
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	log.Debugf("Uploaded s3://%s/%s", d.bucket, key)
	return nil
}
