package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/store"
	"github.com/MKhiriev/go-help-registry/models"
)

// backupFormatVersion is the current backup envelope version. Restore rejects
// files carrying any other version instead of failing opaquely mid-decode.
const backupFormatVersion = 1

// RestorePolicy selects how restored articles are combined with the acting
// user's existing collection.
type RestorePolicy int

const (
	// PolicyMerge adds a restored article only when no existing article
	// shares its id.
	PolicyMerge RestorePolicy = iota

	// PolicyReplace clears the acting user's collection before adding the
	// restored articles.
	PolicyReplace
)

// backupEnvelope is the on-disk backup format: an explicit version tag, a
// snapshot identity, and a flat list of article records.
type backupEnvelope struct {
	Version    int             `json:"version"`
	SnapshotID uuid.UUID       `json:"snapshot_id"`
	CreatedAt  time.Time       `json:"created_at"`
	Articles   []articleRecord `json:"articles"`
}

// articleRecord is the serialized form of one article. Body carries the
// stored bytes as-is — ciphertext for restricted articles stays ciphertext,
// it is never re-encrypted for transport.
type articleRecord struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Links       []string `json:"links"`
	Groups      []string `json:"groups"`
	Level       string   `json:"level"`
	Author      string   `json:"author"`
	Restricted  bool     `json:"restricted"`
	Body        []byte   `json:"body"`
}

// BackupService serializes an access-filtered view of the registry's
// articles to a file and restores them under a merge-or-replace policy,
// re-validating access on the way back in.
type BackupService struct {
	store  *store.Registry
	logger *logger.Logger
}

// NewBackupService constructs a BackupService around the given store.
func NewBackupService(st *store.Registry, log *logger.Logger) *BackupService {
	return &BackupService{
		store:  st,
		logger: log,
	}
}

// Backup collects every article across every registered user that
// actingUser may access and writes the filtered collection to path. An empty
// filtered set still produces a valid backup file. Returns a wrapped
// ErrBackupIO when the file cannot be written.
func (s *BackupService) Backup(path string, actingUser *models.User) error {
	envelope := backupEnvelope{
		Version:    backupFormatVersion,
		SnapshotID: uuid.New(),
		CreatedAt:  time.Now(),
		Articles:   []articleRecord{},
	}

	for _, u := range s.store.ListUsers() {
		for _, a := range u.Articles {
			if a.UserHasAccess(actingUser) {
				envelope.Articles = append(envelope.Articles, toRecord(a))
			}
		}
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackupIO, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		s.logger.Err(err).Str("path", path).Msg("backup write failed")
		return fmt.Errorf("%w: %w", ErrBackupIO, err)
	}

	s.logger.Debug().
		Str("path", path).
		Str("snapshot_id", envelope.SnapshotID.String()).
		Int("articles", len(envelope.Articles)).
		Msg("backup completed")
	return nil
}

// Restore reads a backup file and adds its articles to actingUser's
// collection under the given policy. Access is re-checked per article
// against actingUser — the file's original grants are not trusted. Articles
// failing the access check (and, under [PolicyMerge], duplicate ids) are
// skipped silently.
//
// Returns ErrRestoreAccessDenied when actingUser is nil or unprivileged, a
// wrapped ErrBackupIO when the file cannot be read, and a wrapped
// ErrCorruptBackup on a malformed payload or unsupported version.
func (s *BackupService) Restore(path string, policy RestorePolicy, actingUser *models.User) error {
	if actingUser == nil || !actingUser.Role.IsPrivileged() {
		return ErrRestoreAccessDenied
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Err(err).Str("path", path).Msg("restore read failed")
		return fmt.Errorf("%w: %w", ErrBackupIO, err)
	}

	var envelope backupEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptBackup, err)
	}
	if envelope.Version != backupFormatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptBackup, envelope.Version)
	}

	if policy == PolicyReplace {
		actingUser.ClearHelpArticles()
	}

	restored, skipped := 0, 0
	for _, rec := range envelope.Articles {
		a := fromRecord(rec)

		if !a.UserHasAccess(actingUser) {
			skipped++
			continue
		}
		if policy == PolicyMerge && actingUser.FindHelpArticle(a.ID) != nil {
			skipped++
			continue
		}

		actingUser.AddHelpArticle(a)
		restored++
	}

	s.logger.Debug().
		Str("path", path).
		Str("snapshot_id", envelope.SnapshotID.String()).
		Int("restored", restored).
		Int("skipped", skipped).
		Msg("restore completed")
	return nil
}

func toRecord(a *models.Article) articleRecord {
	return articleRecord{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Keywords:    a.Keywords,
		Links:       a.Links,
		Groups:      a.Groups,
		Level:       a.Level,
		Author:      a.Author,
		Restricted:  a.Restricted,
		Body:        a.Body,
	}
}

func fromRecord(rec articleRecord) *models.Article {
	a := &models.Article{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Keywords:    rec.Keywords,
		Links:       rec.Links,
		Level:       rec.Level,
		Author:      rec.Author,
		Body:        rec.Body,
	}
	// Recompute the classification from the tags rather than trusting the
	// serialized flag; the stored body bytes are carried through unchanged.
	a.SetGroups(rec.Groups)
	return a
}
