package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"tutorship-api/models"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RosterSource отдаёт свежий список преподавателей
type RosterSource interface {
	FetchTeachers(ctx context.Context) ([]models.Teacher, error)
}

// ObjectStore - часть MinIOService, нужная для чтения документа из бакета
type ObjectStore interface {
	ObjectExistsInBucket(ctx context.Context, bucket, objectPath string) (bool, error)
	DownloadFile(ctx context.Context, bucket, objectPath string) ([]byte, error)
}

type HTTPRosterSource struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewHTTPRosterSource(url string, timeout time.Duration, logger *zap.Logger) *HTTPRosterSource {
	return &HTTPRosterSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *HTTPRosterSource) FetchTeachers(ctx context.Context) ([]models.Teacher, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetchFailure, resp.StatusCode, s.url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrFetchFailure, err)
	}

	return DecodeRoster(data, s.logger)
}

type MinIORosterSource struct {
	store      ObjectStore
	bucket     string
	objectPath string
	logger     *zap.Logger
}

func NewMinIORosterSource(store ObjectStore, bucket, objectPath string, logger *zap.Logger) *MinIORosterSource {
	return &MinIORosterSource{
		store:      store,
		bucket:     bucket,
		objectPath: objectPath,
		logger:     logger,
	}
}

func (s *MinIORosterSource) FetchTeachers(ctx context.Context) ([]models.Teacher, error) {
	exists, err := s.store.ObjectExistsInBucket(ctx, s.bucket, s.objectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check object: %v", ErrFetchFailure, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: object %s/%s not found", ErrFetchFailure, s.bucket, s.objectPath)
	}

	data, err := s.store.DownloadFile(ctx, s.bucket, s.objectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	return DecodeRoster(data, s.logger)
}

var recordValidator = validator.New()

// DecodeRoster разбирает документ с консультациями.
// Записи без имени отбрасываются, остальные сохраняют исходный порядок.
func DecodeRoster(data []byte, logger *zap.Logger) ([]models.Teacher, error) {
	var doc models.TutorshipsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode roster: %v", ErrFetchFailure, err)
	}

	teachers := make([]models.Teacher, 0, len(doc.Teachers))
	for i, record := range doc.Teachers {
		if err := recordValidator.Struct(record); err != nil {
			logger.Warn("dropping teacher record", zap.Int("index", i), zap.Error(err))
			continue
		}
		teachers = append(teachers, record.ToTeacher())
	}

	return teachers, nil
}
