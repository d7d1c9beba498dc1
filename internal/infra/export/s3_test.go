package export

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakePutter{}
	u := NewS3Uploader(fake, "rosters")

	loc, err := u.Upload(context.Background(), "roster/a.json", []byte(`[]`), "application/json")
	require.NoError(t, err)

	assert.Equal(t, Location{Bucket: "rosters", Key: "roster/a.json"}, loc)
	assert.Equal(t, "rosters", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "roster/a.json", aws.ToString(fake.in.Key))
	assert.Equal(t, "application/json", aws.ToString(fake.in.ContentType))
	assert.Equal(t, []byte(`[]`), fake.body)
}

func TestS3Uploader_WrapsError(t *testing.T) {
	boom := errors.New("access denied")
	u := NewS3Uploader(&fakePutter{err: boom}, "rosters")

	_, err := u.Upload(context.Background(), "k", nil, "application/json")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://rosters/k")
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Upload(context.Background(), "k", nil, "")
	assert.ErrorIs(t, err, ErrDisabled)
}
