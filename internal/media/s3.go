package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3 uploads decoded images to a bucket and persists the object URL instead of the data URI.
type S3 struct {
	inline *Inline
	client s3iface.S3API
	bucket string
	region string
}

func NewS3(bucket, region, accessKey, secretKey string, maxBytes int) (*S3, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return newS3(s3.New(sess), bucket, region, maxBytes), nil
}

func newS3(client s3iface.S3API, bucket, region string, maxBytes int) *S3 {
	return &S3{
		inline: NewInline(maxBytes),
		client: client,
		bucket: bucket,
		region: region,
	}
}

func (s *S3) Store(ctx context.Context, key string, image string) (string, error) {
	if image == "" || isRemote(image) {
		return image, nil
	}

	img, err := s.inline.Decode(image)
	if err != nil {
		return "", err
	}

	objectKey := "events/" + key + img.MIME.Extension()
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.MIME.String()),
	})
	if err != nil {
		return "", fmt.Errorf("upload image to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey), nil
}
