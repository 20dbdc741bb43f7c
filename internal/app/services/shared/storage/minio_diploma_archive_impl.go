package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// minioAPI is the part of *minio.Client the archive uses.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioDiplomaArchive struct {
	MinioClient minioAPI
	BucketName  string
	Log         *zap.Logger

	bucketOnce sync.Once
	bucketErr  error
}

func NewMinioDiplomaArchive(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.DiplomaArchive {
	return newMinioDiplomaArchive(minioClient, bucketName, logger)
}

func newMinioDiplomaArchive(client minioAPI, bucketName string, logger *zap.Logger) *minioDiplomaArchive {
	return &minioDiplomaArchive{
		MinioClient: client,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioDiplomaArchive) ensureBucket(ctx context.Context) error {
	m.bucketOnce.Do(func() {
		exists, err := m.MinioClient.BucketExists(ctx, m.BucketName)
		if err == nil && !exists {
			err = m.MinioClient.MakeBucket(ctx, m.BucketName, minio.MakeBucketOptions{})
		}
		if err != nil {
			m.bucketErr = exceptions.ErrMinioEnsureBucket(err, m.BucketName)
		}
	})
	return m.bucketErr
}

// ObjectName is where a professional's diploma is kept inside the bucket.
func ObjectName(diploma *responses.Diploma) string {
	filename := diploma.Filename
	if filename == "" {
		filename = "diploma" + extensionFor(diploma.ContentType)
	}
	return fmt.Sprintf("professional-%d/%s", diploma.ProfessionalID, filename)
}

func extensionFor(contentType string) string {
	switch contentType {
	case constvars.MIMEApplicationPDF:
		return ".pdf"
	case constvars.MIMEImagePNG:
		return ".png"
	case constvars.MIMEImageJPEG:
		return ".jpg"
	default:
		return ""
	}
}

func (m *minioDiplomaArchive) Store(ctx context.Context, diploma *responses.Diploma) (*responses.ArchivedDiploma, error) {
	requestID := utils.RequestIDFromContext(ctx)
	m.Log.Info("minioDiplomaArchive.Store called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, diploma.ProfessionalID),
	)

	if err := m.ensureBucket(ctx); err != nil {
		m.Log.Error("minioDiplomaArchive.Store error ensuring bucket",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, m.BucketName),
			zap.Error(err),
		)
		return nil, err
	}

	contentType := diploma.ContentType
	if contentType == "" {
		contentType = utils.ContentTypeForFile(diploma.Filename)
	}
	objectName := ObjectName(diploma)

	info, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(diploma.Content),
		int64(len(diploma.Content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioDiplomaArchive.Store error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, m.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioDiplomaArchive.Store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.ArchivedDiploma{
		ProfessionalID: diploma.ProfessionalID,
		Bucket:         m.BucketName,
		ObjectName:     objectName,
		Size:           info.Size,
	}, nil
}
