package blobs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory objectAPI keyed by bucket/key.
type fakeS3 struct {
	objects map[string][]byte
	failPut error
	failGet error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut != nil {
		return nil, f.failPut
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	b, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "vault",
	}
}

func stubS3(t *testing.T, client objectAPI) *s3.Options {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("static credentials not applied")
		}
		return aws.Config{}, nil
	}

	captured := &s3.Options{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		for _, fn := range optFns {
			fn(captured)
		}
		return client
	}
	return captured
}

func TestNewS3Store_AppliesConfig(t *testing.T) {
	opts := stubS3(t, newFakeS3())

	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "vault", s.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	stubS3(t, newFakeS3())
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no profile")
	}

	_, err := NewS3Store(context.Background(), testConfig())
	assert.ErrorContains(t, err, "load aws config: no profile")
}

func TestNew_EndpointUsesS3(t *testing.T) {
	stubS3(t, newFakeS3())

	s, err := New(context.Background(), testConfig())
	require.NoError(t, err)
	assert.IsType(t, &S3Store{}, s)
}

func TestS3Store_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	stubS3(t, fake)

	s, err := NewS3Store(ctx, testConfig())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "users/u-1/fingerprint", []byte("template")))
	assert.Contains(t, fake.objects, "vault/users/u-1/fingerprint")

	got, err := s.Get(ctx, "users/u-1/fingerprint")
	require.NoError(t, err)
	assert.Equal(t, []byte("template"), got)

	require.NoError(t, s.Delete(ctx, "users/u-1/fingerprint"))
	_, err = s.Get(ctx, "users/u-1/fingerprint")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestS3Store_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	stubS3(t, fake)

	s, err := NewS3Store(ctx, testConfig())
	require.NoError(t, err)

	fake.failPut = errors.New("quota")
	assert.ErrorContains(t, s.Put(ctx, "k", nil), "s3 put k: quota")

	fake.failGet = errors.New("timeout")
	_, err = s.Get(ctx, "k")
	assert.ErrorContains(t, err, "s3 get k: timeout")
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}
