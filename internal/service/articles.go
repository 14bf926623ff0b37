package service

import (
	"github.com/MKhiriev/go-help-registry/internal/crypto"
	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/store"
	"github.com/MKhiriev/go-help-registry/models"
)

// Sentinel strings returned by [ArticleService.Body] in place of article
// content. Content-control failures never raise to the caller; they surface
// as one of these fixed messages plus an internal log entry.
const (
	AccessDeniedMessage   = "You do not have access to view this article."
	KeyUnavailableMessage = "Encryption key not available. Cannot decrypt article body."
	DecryptErrorMessage   = "Error decrypting article body."
)

// ArticleService implements per-article content control: selective body
// encryption driven by the restricted classification, access-checked reads,
// in-place updates, and keyword search with journal recording.
//
// A nil content key puts the service in a degraded state in which restricted
// bodies can be neither stored nor read; unrestricted articles keep working.
type ArticleService struct {
	store *store.Registry

	// articleKey is the content key material. Nil in degraded state.
	articleKey []byte

	logger *logger.Logger
}

// NewArticleService constructs an ArticleService around the given store and
// content key. Pass a nil key to start the service degraded.
func NewArticleService(st *store.Registry, articleKey []byte, log *logger.Logger) *ArticleService {
	if articleKey == nil {
		log.Error().Msg("content key unavailable: restricted article bodies are disabled")
	}
	return &ArticleService{
		store:      st,
		articleKey: articleKey,
		logger:     log,
	}
}

// NewArticle constructs an article, derives its restricted classification
// from the group tags, and routes the body through [ArticleService.SetBody]
// so the stored representation matches the classification from the start.
func (s *ArticleService) NewArticle(id int64, title, description string, keywords []string, body string, links, groups []string, level, author string) *models.Article {
	a := &models.Article{
		ID:          id,
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Links:       links,
		Level:       level,
		Author:      author,
	}
	a.SetGroups(groups)
	s.SetBody(a, body)
	return a
}

// Body returns the article body for the given user.
//
// It returns [AccessDeniedMessage] when the access check fails. For
// restricted articles the stored ciphertext is decrypted with the content
// key; key absence or a decryption failure yields a sentinel string, never
// an error. Unrestricted bodies are returned as stored.
func (s *ArticleService) Body(a *models.Article, u *models.User) string {
	if !a.UserHasAccess(u) {
		return AccessDeniedMessage
	}

	if !a.Restricted {
		return string(a.Body)
	}

	if s.articleKey == nil {
		return KeyUnavailableMessage
	}

	plaintext, err := crypto.Decrypt(a.Body, s.articleKey)
	if err != nil {
		s.logger.Err(err).Int64("article_id", a.ID).Msg("article body decryption failed")
		return DecryptErrorMessage
	}
	return string(plaintext)
}

// SetBody stores the article body, encrypting it when the article is
// classified restricted. When the content key is unavailable the body is
// stored as nil and the failure is logged.
//
// The restricted classification must already reflect the article's current
// group tags (see [models.Article.SetGroups]) so representation and
// classification never diverge.
func (s *ArticleService) SetBody(a *models.Article, body string) {
	if !a.Restricted {
		a.Body = []byte(body)
		return
	}

	if s.articleKey == nil {
		s.logger.Error().Int64("article_id", a.ID).Msg("content key unavailable: cannot encrypt article body")
		a.Body = nil
		return
	}

	ciphertext, err := crypto.Encrypt([]byte(body), s.articleKey)
	if err != nil {
		s.logger.Err(err).Int64("article_id", a.ID).Msg("article body encryption failed")
		a.Body = nil
		return
	}
	a.Body = ciphertext
}

// UpdateHelpArticle updates every field of the user's article with the given
// id. Group tags are applied before the body so the body is stored under the
// article's new classification. Reports whether an article was updated.
func (s *ArticleService) UpdateHelpArticle(u *models.User, id int64, title, description string, keywords []string, body string, links, groups []string, level string) bool {
	a := u.FindHelpArticle(id)
	if a == nil {
		return false
	}

	a.Title = title
	a.Description = description
	a.Keywords = keywords
	a.Links = links
	a.Level = level
	a.SetGroups(groups)
	s.SetBody(a, body)
	return true
}

// SearchHelpArticles records the query in the registry's search journal and
// returns the user's own articles matching the keyword (exact keyword entry
// or title substring).
func (s *ArticleService) SearchHelpArticles(u *models.User, keyword string) []*models.Article {
	s.store.AppendSearchQuery(models.NewSearchQuery(u.Username, keyword))

	var results []*models.Article
	for _, a := range u.Articles {
		if a.MatchesKeyword(keyword) {
			results = append(results, a)
		}
	}
	return results
}
