package services

//go:generate mockgen -source=submission.go -destination=mock_submission.go -package=services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
	"github.com/sbilibin2017/survey-collector/internal/repositories"
)

// TimestampLayout is the format of section completion and archive generation times.
const TimestampLayout = "2006-01-02 15:04:05"

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserWriter upserts users.
type UserWriter interface {
	Upsert(ctx context.Context, user models.UserDB) error
}

// SectionWriter inserts sections.
type SectionWriter interface {
	Save(ctx context.Context, section models.SectionDB) error
}

// AnswerWriter inserts the answers of a section.
type AnswerWriter interface {
	SaveAll(ctx context.Context, userID, sectionID int64, answers []models.Answer) error
}

// PhotoWriter inserts photo rows.
type PhotoWriter interface {
	Save(ctx context.Context, photo models.PhotoDB) error
}

// PhotoFileWriter stores and removes photo files.
type PhotoFileWriter interface {
	Save(activity string, index int, payload []byte, at time.Time) (string, error) // Writes a photo and returns its relative path
	Remove(path string) error                                                      // Deletes a stored photo
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SubmissionService stores survey submissions coming from the mobile client.
type SubmissionService struct {
	tx          TxRunner
	users       UserWriter
	sections    SectionWriter
	answers     AnswerWriter
	photos      PhotoWriter
	files       PhotoFileWriter
	kafkaWriter KafkaWriter
	loc         *time.Location
	now         func() time.Time
}

// NewSubmissionService creates a new SubmissionService.
// kafkaWriter may be nil, in which case events are not published.
func NewSubmissionService(
	tx TxRunner,
	users UserWriter,
	sections SectionWriter,
	answers AnswerWriter,
	photos PhotoWriter,
	files PhotoFileWriter,
	kafkaWriter KafkaWriter,
	loc *time.Location,
) *SubmissionService {
	if loc == nil {
		loc = time.Local
	}
	return &SubmissionService{
		tx:          tx,
		users:       users,
		sections:    sections,
		answers:     answers,
		photos:      photos,
		files:       files,
		kafkaWriter: kafkaWriter,
		loc:         loc,
		now:         time.Now,
	}
}

// Submit stores the user, the section, its answers and its photos in one transaction.
// Photos without payload are skipped. If any step fails nothing is kept:
// the transaction is rolled back and files written by this call are removed.
func (s *SubmissionService) Submit(ctx context.Context, sub models.Submission) error {
	if sub.UserID == 0 || sub.SectionID == 0 {
		return ErrMissingIdentifiers
	}

	now := s.now().In(s.loc)
	completedAt := now.Format(TimestampLayout)

	var written []string
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.users.Upsert(ctx, models.UserDB{UserID: sub.UserID, Name: sub.Name, Email: sub.Email}); err != nil {
			logger.Log.Errorw("failed to save user", "userID", sub.UserID, "error", err)
			return fmt.Errorf("save user: %w", err)
		}

		section := models.SectionDB{SectionID: sub.SectionID, UserID: sub.UserID, CompletedAt: completedAt}
		if err := s.sections.Save(ctx, section); err != nil {
			logger.Log.Errorw("failed to save section", "sectionID", sub.SectionID, "error", err)
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return fmt.Errorf("%w: %d", ErrSectionExists, sub.SectionID)
			}
			return fmt.Errorf("save section: %w", err)
		}

		if err := s.answers.SaveAll(ctx, sub.UserID, sub.SectionID, sub.Answers); err != nil {
			logger.Log.Errorw("failed to save answers", "sectionID", sub.SectionID, "count", len(sub.Answers), "error", err)
			return fmt.Errorf("save answers: %w", err)
		}

		for i, p := range sub.Photos {
			if p.Base64 == "" {
				logger.Log.Debugw("photo without payload skipped", "sectionID", sub.SectionID, "index", i)
				continue
			}

			payload, err := decodePhoto(p.Base64)
			if err != nil {
				logger.Log.Warnw("invalid photo payload", "sectionID", sub.SectionID, "index", i, "error", err)
				return fmt.Errorf("%w: photo %d: %v", ErrInvalidPhoto, i, err)
			}

			path, err := s.files.Save(p.Activity, i, payload, now)
			if err != nil {
				logger.Log.Errorw("failed to store photo file", "sectionID", sub.SectionID, "index", i, "error", err)
				return fmt.Errorf("store photo %d: %w", i, err)
			}
			written = append(written, path)

			photo := models.PhotoDB{UserID: sub.UserID, Activity: p.Activity, Path: path, SectionID: sub.SectionID}
			if err := s.photos.Save(ctx, photo); err != nil {
				logger.Log.Errorw("failed to save photo", "sectionID", sub.SectionID, "path", path, "error", err)
				return fmt.Errorf("save photo %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		s.removeFiles(written)
		return err
	}

	logger.Log.Infow("submission stored",
		"userID", sub.UserID,
		"sectionID", sub.SectionID,
		"answers", len(sub.Answers),
		"photos", len(written),
	)

	s.publishSubmission(ctx, models.SubmissionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   now.Unix(),
		UserID:      sub.UserID,
		SectionID:   sub.SectionID,
		CompletedAt: completedAt,
		Answers:     len(sub.Answers),
		Photos:      len(written),
	})

	return nil
}

// removeFiles deletes files written by a submission that was rolled back.
func (s *SubmissionService) removeFiles(paths []string) {
	for _, p := range paths {
		if err := s.files.Remove(p); err != nil {
			logger.Log.Errorw("failed to remove orphaned photo", "path", p, "error", err)
		}
	}
}

// publishSubmission publishes a committed submission to Kafka.
func (s *SubmissionService) publishSubmission(ctx context.Context, evt models.SubmissionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "sectionID", evt.SectionID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal submission event", "sectionID", evt.SectionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", evt.SectionID)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish submission to Kafka", "sectionID", evt.SectionID, "error", err)
	} else {
		logger.Log.Infow("Submission published to Kafka", "sectionID", evt.SectionID, "event_id", evt.EventID)
	}
}

// photoEncodings are tried in order. Android clients may send padded,
// unpadded or URL-safe payloads depending on their Base64 flags.
var photoEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// decodePhoto decodes a base64 payload, accepting an optional data URI prefix,
// embedded whitespace, missing padding and the URL-safe alphabet.
func decodePhoto(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}
	payload = strings.Join(strings.Fields(payload), "")

	var firstErr error
	for _, enc := range photoEncodings {
		data, err := enc.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
