package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor"
	"github.com/arbor-dev/arbor/internal/config"
	"github.com/arbor-dev/arbor/internal/errors"
	"github.com/arbor-dev/arbor/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		key    string
		bucket string
	)

	cmd := &cobra.Command{
		Use:   "publish [file]",
		Short: "Render a page and publish it to the configured store",
		Long: `Render a page description and write the HTML to the publish store.

By default the page is written to the local output directory from
arbor.json. With a bucket (flag or config) it is uploaded to S3
instead, using credentials from the environment.

Examples:
  arbor publish page.json
  arbor publish page.json --key docs/index.html
  arbor publish page.json --bucket my-site-bucket`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPublish(path, key, bucket)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Destination key (default derived from the file name)")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from arbor.json)")

	return cmd
}

func runPublish(path, key, bucket string) error {
	cfg := config.LoadOrDefault(".")
	if path == "" {
		path = filepath.Join(cfg.Dir(), cfg.Entry)
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if key == "" {
		key = pageKey(path)
	}

	desc, err := readTree(path)
	if err != nil {
		return err
	}

	opts := []arbor.Option{}
	if cfg.Scoped {
		opts = append(opts, arbor.Scoped())
	}
	if cfg.Strict {
		opts = append(opts, arbor.Strict())
	}
	html, err := arbor.Render(desc, opts...)
	if err != nil {
		return err
	}

	store := newStore(cfg, bucket)
	location, err := store.Put(context.Background(), key, []byte(html))
	if err != nil {
		return errors.New("L002").WithPath(key).Wrap(err)
	}

	success("Published %s (%d bytes)", location, len(html))
	return nil
}

// newStore selects the publish backend: S3 when a bucket is configured,
// the local output directory otherwise.
func newStore(cfg *config.Config, bucket string) publish.Store {
	if bucket == "" {
		return publish.NewDirStore(filepath.Join(cfg.Dir(), cfg.Publish.Output))
	}

	client := s3.New(s3.Options{
		Region:      os.Getenv("AWS_REGION"),
		Credentials: envCredentials(),
	})
	return publish.NewS3Store(client, bucket, cfg.Publish.Prefix)
}

// envCredentials reads static AWS credentials from the environment.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}, nil
	})
}

// pageKey derives a store key from the description file name:
// "page.json" becomes "page.html".
func pageKey(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".html"
}
