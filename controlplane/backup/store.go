/*
 Ondemand, a controller for on-demand Minecraft servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/spacechunks/ondemand/internal/ptr"
)

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Retention describes how long backups are kept in the bucket.
type Retention struct {
	RuleID         string
	Prefix         string
	CurrentDays    int32
	NoncurrentDays int32
}

var DefaultRetention = Retention{
	RuleID:         "KeepLatestBackups",
	Prefix:         KeyPrefix,
	CurrentDays:    7,
	NoncurrentDays: 1,
}

type Store interface {
	Put(ctx context.Context, key string, r io.Reader, metadata map[string]string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	ApplyRetention(ctx context.Context, r Retention) error
}

type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(bucket string, c *s3.Client) *S3Store {
	return &S3Store{
		client: c,
		bucket: bucket,
	}
}

func (s *S3Store) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var s3err smithy.APIError
		if errors.As(err, &s3err) && (s3err.ErrorCode() == "NotFound" || s3err.ErrorCode() == "NoSuchKey") {
			return false, nil
		}
		return false, fmt.Errorf("head object: %w", err)
	}

	return true, nil
}

// Put uploads the archive read from r. large archives are split into
// multiple parts by the upload manager.
func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, metadata map[string]string) error {
	uploader := manager.NewUploader(s.client)

	if _, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        r,
		ContentType: ptr.Pointer("application/gzip"),
		Metadata:    metadata,
	}); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var (
		objs []ObjectInfo
		p    = s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
			Bucket: &s.bucket,
			Prefix: &prefix,
		})
	)

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}

		for _, obj := range page.Contents {
			objs = append(objs, ObjectInfo{
				Key:          ptr.Deref(obj.Key),
				Size:         ptr.Deref(obj.Size),
				LastModified: ptr.Deref(obj.LastModified),
			})
		}
	}

	return objs, nil
}

// ApplyRetention replaces the lifecycle configuration of the bucket
// with a single rule expiring objects below the configured prefix.
func (s *S3Store) ApplyRetention(ctx context.Context, r Retention) error {
	if _, err := s.client.PutBucketLifecycleConfiguration(ctx, &s3.PutBucketLifecycleConfigurationInput{
		Bucket: &s.bucket,
		LifecycleConfiguration: &types.BucketLifecycleConfiguration{
			Rules: []types.LifecycleRule{
				{
					ID:     &r.RuleID,
					Status: types.ExpirationStatusEnabled,
					Filter: &types.LifecycleRuleFilter{
						Prefix: &r.Prefix,
					},
					Expiration: &types.LifecycleExpiration{
						Days: &r.CurrentDays,
					},
					NoncurrentVersionExpiration: &types.NoncurrentVersionExpiration{
						NoncurrentDays: &r.NoncurrentDays,
					},
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("put bucket lifecycle configuration: %w", err)
	}

	return nil
}
