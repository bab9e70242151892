package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sowmyalt/edu2job/internal/types"
)

// GetObjectAPI is the subset of the S3 client used to fetch the corpus.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a CSV corpus stored as an S3 (or S3-compatible) object.
type S3Source struct {
	Client GetObjectAPI
	Bucket string
	Key    string
	Strict bool
}

// S3Config holds connection settings for NewS3Client.
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds an S3 client from the default AWS credential chain.
// Static keys and a custom endpoint are optional; a custom endpoint implies
// path-style addressing.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Load implements Source.
func (s S3Source) Load(ctx context.Context) ([]types.TrainingExample, error) {
	name := fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
	if s.Client == nil {
		return nil, &LoadError{Source: name, Message: "no s3 client configured"}
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, &LoadError{Source: name, Message: "failed to get object", Cause: err}
	}
	defer out.Body.Close()

	return ReadCSV(ctx, out.Body, name, s.Strict)
}
