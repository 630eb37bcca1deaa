package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	appConfig "gohoops/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// IngestLogger collects the run log of one ingestion invocation.
type IngestLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// CreateLogger creates the log instance with a temporary file.
func CreateLogger() (*IngestLogger, error) {
	f, err := os.CreateTemp("", "ingest-*.log")
	if err != nil {
		return nil, err
	}

	return &IngestLogger{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Infof logs a simple info.
func (l *IngestLogger) Infof(format string, args ...interface{}) {
	l.write("[INFO]", format, args...)
}

// Errorf logs a error.
func (l *IngestLogger) Errorf(format string, args ...interface{}) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
func (l *IngestLogger) write(infoType string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
}

// CleanFile cleans the file contents.
func (l *IngestLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// Close removes the backing temp file.
func (l *IngestLogger) Close() error {
	l.logFile.Close()
	return os.Remove(l.filePath)
}

// UploadToBucket ships the run log to the configured S3 bucket.
func (l *IngestLogger) UploadToBucket(bucket appConfig.BucketConfiguration, objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				bucket.AccessKey,
				bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(bucket.Endpoint)
	})

	// Run the put.
	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}
