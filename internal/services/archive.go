package services

//go:generate mockgen -source=archive.go -destination=mock_archive.go -package=services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// SectionReader looks up the owner of a section.
type SectionReader interface {
	GetOwner(ctx context.Context, sectionID int64) (*models.SectionOwner, error)
}

// AnswerReader lists the answers of a section.
type AnswerReader interface {
	ListBySection(ctx context.Context, sectionID int64) ([]models.Answer, error)
}

// PhotoPathReader lists the stored photo paths of a section.
type PhotoPathReader interface {
	ListPathsBySection(ctx context.Context, sectionID int64) ([]string, error)
}

// PhotoOpener opens stored photo files.
type PhotoOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// ArchiveService builds per-section ZIP archives.
type ArchiveService struct {
	sections SectionReader
	answers  AnswerReader
	photos   PhotoPathReader
	files    PhotoOpener
	loc      *time.Location
	now      func() time.Time
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(
	sections SectionReader,
	answers AnswerReader,
	photos PhotoPathReader,
	files PhotoOpener,
	loc *time.Location,
) *ArchiveService {
	if loc == nil {
		loc = time.Local
	}
	return &ArchiveService{
		sections: sections,
		answers:  answers,
		photos:   photos,
		files:    files,
		loc:      loc,
		now:      time.Now,
	}
}

// ArchiveFileName returns the download name of a section archive.
func ArchiveFileName(sectionID int64) string {
	return fmt.Sprintf("respostas_fotos_secao%05d.zip", sectionID)
}

func manifestFileName(sectionID int64) string {
	return fmt.Sprintf("respostas_secao%d.json", sectionID)
}

const readmeFileName = "LEIA-ME.txt"

// Load reads everything an archive needs. It performs all database access,
// so a failure here happens before anything is streamed to the client.
func (s *ArchiveService) Load(ctx context.Context, sectionID int64) (*models.SectionArchive, error) {
	owner, err := s.sections.GetOwner(ctx, sectionID)
	if err != nil {
		logger.Log.Errorw("failed to load section owner", "sectionID", sectionID, "error", err)
		return nil, fmt.Errorf("load section: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
	}

	answers, err := s.answers.ListBySection(ctx, sectionID)
	if err != nil {
		logger.Log.Errorw("failed to load answers", "sectionID", sectionID, "error", err)
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if answers == nil {
		answers = []models.Answer{}
	}

	paths, err := s.photos.ListPathsBySection(ctx, sectionID)
	if err != nil {
		logger.Log.Errorw("failed to load photo paths", "sectionID", sectionID, "error", err)
		return nil, fmt.Errorf("load photos: %w", err)
	}

	return &models.SectionArchive{
		SectionID:   sectionID,
		Owner:       *owner,
		Answers:     answers,
		PhotoPaths:  paths,
		GeneratedAt: s.now().In(s.loc).Format(TimestampLayout),
	}, nil
}

// Write streams arc as a ZIP into w: the answers JSON, every photo that still
// exists on disk under fotos/, and a LEIA-ME.txt summary.
func (s *ArchiveService) Write(w io.Writer, arc *models.SectionArchive) error {
	zw := zip.NewWriter(w)
	modified := s.now()

	manifest := models.ArchiveManifest{
		SectionID:    arc.SectionID,
		UserID:       arc.Owner.UserID,
		Name:         arc.Owner.Name,
		Email:        arc.Owner.Email,
		GeneratedAt:  arc.GeneratedAt,
		TotalAnswers: len(arc.Answers),
		Questions:    arc.Answers,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if _, err := writeEntry(zw, manifestFileName(arc.SectionID), zip.Deflate, modified, bytes.NewReader(data)); err != nil {
		return err
	}

	var (
		included   int
		photoBytes int64
	)
	for _, p := range arc.PhotoPaths {
		rc, err := s.files.Open(p)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Log.Warnw("photo not readable, skipped", "path", p, "error", err)
			}
			continue
		}

		// JPEG data is already compressed
		n, err := writeEntry(zw, "fotos/"+path.Base(p), zip.Store, modified, rc)
		rc.Close()
		if err != nil {
			return err
		}
		included++
		photoBytes += n
	}

	readme := fmt.Sprintf("RELATÓRIO DA SEÇÃO %d\n\n"+
		"Data de geração: %s\n"+
		"Total de respostas: %d\n"+
		"Total de fotos: %d\n"+
		"Fotos incluídas: %d (%s)\n\n"+
		"Este arquivo contém:\n"+
		"- %s\n"+
		"- fotos/: imagens registradas na seção\n",
		arc.SectionID,
		arc.GeneratedAt,
		len(arc.Answers),
		len(arc.PhotoPaths),
		included, humanize.Bytes(uint64(photoBytes)),
		manifestFileName(arc.SectionID),
	)
	if _, err := writeEntry(zw, readmeFileName, zip.Deflate, modified, bytes.NewReader([]byte(readme))); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	logger.Log.Infow("archive written",
		"sectionID", arc.SectionID,
		"answers", len(arc.Answers),
		"photos", included,
		"photo_bytes", humanize.Bytes(uint64(photoBytes)),
	)
	return nil
}

func writeEntry(zw *zip.Writer, name string, method uint16, modified time.Time, r io.Reader) (int64, error) {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   method,
		Modified: modified,
	})
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(fw, r)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}
