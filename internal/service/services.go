package service

import (
	"github.com/MKhiriev/go-help-registry/internal/config"
	"github.com/MKhiriev/go-help-registry/internal/crypto"
	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/store"
)

type Services struct {
	Registry *RegistryService
	Articles *ArticleService
	Backup   *BackupService
}

// NewServices bootstraps both key materials through the key store and wires
// all services around one registry store. Key bootstrap failures are soft:
// the affected service starts degraded instead of aborting the process.
func NewServices(st *store.Registry, cfg config.StructuredConfig, log *logger.Logger) *Services {
	keys := crypto.NewKeyStore()

	passwordKey, err := keys.LoadOrCreate(cfg.Keys.PasswordKeyFile)
	if err != nil {
		log.Err(err).Str("path", cfg.Keys.PasswordKeyFile).Msg("credential key bootstrap failed")
	}

	articleKey, err := keys.LoadOrCreate(cfg.Keys.ArticleKeyFile)
	if err != nil {
		log.Err(err).Str("path", cfg.Keys.ArticleKeyFile).Msg("content key bootstrap failed")
	}

	return &Services{
		Registry: NewRegistryService(st, passwordKey, log),
		Articles: NewArticleService(st, articleKey, log),
		Backup:   NewBackupService(st, log),
	}
}
