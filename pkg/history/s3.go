// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package history

import (
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	s3go "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const URLPrefixS3 = "s3://"

// S3Backend keeps the issue database in a bucket object, for bot instances
// that run on ephemeral machines with no stable disk
type S3Backend struct {
	session session.Session
}

func NewS3Backend() *S3Backend {
	conf := &aws.Config{
		Region: aws.String(os.Getenv("AWS_DEFAULT_REGION")),
	}
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		logrus.Info("No AWS credentials found in the environment, using anonymous client")
		conf.Credentials = credentials.AnonymousCredentials
	}
	sess := session.Must(session.NewSession(conf))
	return &S3Backend{
		session: *sess,
	}
}

func (s3 *S3Backend) URLPrefix() string {
	return URLPrefixS3
}

func (s3 *S3Backend) splitBucketPath(locationURL string) (bucket, path string, err error) {
	u, err := url.Parse(locationURL)
	if err != nil {
		return bucket, path, errors.Wrap(err, "parsing database URL")
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

func (s3 *S3Backend) Read(path string) ([]byte, error) {
	bucket, key, err := s3.splitBucketPath(path)
	if err != nil {
		return nil, err
	}
	downloader := s3manager.NewDownloader(&s3.session)
	buf := aws.NewWriteAtBuffer([]byte{})
	n, err := downloader.Download(buf, &s3go.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s from %s", key, bucket)
	}
	logrus.Infof("Downloaded %d bytes from %s", n, path)
	return buf.Bytes(), nil
}

func (s3 *S3Backend) Write(path string, data []byte) error {
	bucket, key, err := s3.splitBucketPath(path)
	if err != nil {
		return err
	}
	uploader := s3manager.NewUploader(&s3.session)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(string(data)),
	})
	return errors.Wrap(err, "uploading database object")
}

// Backup does a server-side copy of the current database object to its
// .backup sibling key
func (s3 *S3Backend) Backup(path string) error {
	exists, err := s3.PathExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	bucket, key, err := s3.splitBucketPath(path)
	if err != nil {
		return err
	}
	_, err = s3go.New(&s3.session).CopyObject(&s3go.CopyObjectInput{
		Bucket:     aws.String(bucket),
		CopySource: aws.String(bucket + "/" + key),
		Key:        aws.String(key + BackupSuffix),
	})
	if err != nil {
		return errors.Wrap(err, "copying database object to backup key")
	}
	logrus.Infof("Created backup: %s%s", path, BackupSuffix)
	return nil
}

func (s3 *S3Backend) PathExists(path string) (bool, error) {
	bucket, key, err := s3.splitBucketPath(path)
	if err != nil {
		return false, err
	}
	_, err = s3go.New(&s3.session).HeadObject(&s3go.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var awsErr awserr.RequestFailure
		if errors.As(err, &awsErr) && awsErr.StatusCode() == 404 {
			return false, nil
		}
		return false, errors.Wrap(err, "checking if database object exists")
	}
	return true, nil
}
