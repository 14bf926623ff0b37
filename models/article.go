package models

import "strings"

// SpecialGroupPrefix marks group tags that classify an article as restricted.
// An article carrying at least one tag with this prefix stores its body
// encrypted with the content key.
const SpecialGroupPrefix = "special_"

// Article is a help content unit owned by a user. The ID is assigned at
// creation and never changes afterwards.
//
// Body holds ciphertext when Restricted is true and raw UTF-8 text otherwise.
// The two fields are kept in sync by routing every body write through the
// article service after group tags change; [Article.SetGroups] alone never
// re-encrypts an already stored body.
type Article struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Links       []string `json:"links"`

	// Groups are the visibility tags. Non-privileged users can only access
	// an article when they share at least one group with it.
	Groups []string `json:"groups"`

	// Level is a free-form difficulty label (e.g. "Beginner", "Expert").
	// It is not validated.
	Level string `json:"level"`

	// Author is the username of the owning user.
	Author string `json:"author"`

	// Restricted is derived from Groups: true iff any tag has
	// [SpecialGroupPrefix].
	Restricted bool `json:"restricted"`

	// Body is ciphertext iff Restricted, raw text bytes otherwise.
	Body []byte `json:"-"`
}

// SetGroups replaces the visibility tags and recomputes the restricted
// classification. The stored body is left untouched: callers that change
// classification must re-supply the body through the article service so the
// stored representation follows the new classification.
func (a *Article) SetGroups(groups []string) {
	a.Groups = groups
	a.Restricted = hasSpecialGroup(groups)
}

// InGroup reports whether the article carries the given group tag.
func (a *Article) InGroup(name string) bool {
	for _, g := range a.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// UserHasAccess reports whether the given user may read this article.
// Privileged roles (admin, instructor) always pass; everyone else needs a
// non-empty intersection between the article's tags and the user's groups.
func (a *Article) UserHasAccess(u *User) bool {
	if u == nil {
		return false
	}
	if u.Role.IsPrivileged() {
		return true
	}
	for _, g := range a.Groups {
		if u.InGroup(g) {
			return true
		}
	}
	return false
}

// MatchesKeyword reports whether the article matches a search keyword: an
// exact entry in Keywords or a substring of the title.
func (a *Article) MatchesKeyword(keyword string) bool {
	for _, k := range a.Keywords {
		if k == keyword {
			return true
		}
	}
	return strings.Contains(a.Title, keyword)
}

func hasSpecialGroup(groups []string) bool {
	for _, g := range groups {
		if strings.HasPrefix(g, SpecialGroupPrefix) {
			return true
		}
	}
	return false
}
