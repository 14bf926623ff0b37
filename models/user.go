package models

import (
	"strings"
	"time"
)

// DefaultProficiency is the proficiency level assigned to every seeded topic
// and reported for topics the user has never rated.
const DefaultProficiency = "Intermediate"

// defaultTopics are seeded into every new account at registration time.
var defaultTopics = []string{"Topic 1", "Topic 2", "Topic 3"}

// User represents an account in the help registry. It carries identity and
// credential data, the user's topic proficiency ratings, group memberships,
// and the help articles the user owns.
//
// The Password field holds ciphertext produced with the registry's credential
// key; plaintext passwords must never be stored on this struct.
type User struct {
	// Username is the unique account identifier. Uniqueness is enforced
	// registry-wide at creation time.
	Username string `json:"username"`

	// Password is the encrypted password. Never serialized.
	Password []byte `json:"-"`

	// Role determines the user's capabilities (see [Role.IsPrivileged]).
	Role Role `json:"role"`

	Email         string `json:"email,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	PreferredName string `json:"preferred_name,omitempty"`

	// OneTimePassword marks the current password as single-use. When set,
	// authentication fails once OTPExpiry has passed, regardless of the
	// supplied password.
	OneTimePassword bool `json:"one_time_password"`

	// OTPExpiry is the wall-clock instant after which a one-time password is
	// no longer accepted. Nil means no expiry has been set.
	OTPExpiry *time.Time `json:"otp_expiry,omitempty"`

	// AccountSetupComplete records whether the user has finished the initial
	// profile setup flow driven by the presentation layer.
	AccountSetupComplete bool `json:"account_setup_complete"`

	// Topics maps topic name to proficiency level. Seeded with three default
	// topics at [DefaultProficiency].
	Topics map[string]string `json:"topics"`

	// GroupNames is the set of groups this user belongs to. Maintained by
	// [Group.AddUser] and [Group.RemoveUser].
	GroupNames map[string]struct{} `json:"-"`

	// Articles is the ordered collection of help articles the user owns.
	Articles []*Article `json:"-"`
}

// NewUser constructs a User with the given encrypted password and seeded
// topic defaults. OTP state is off until explicitly enabled.
func NewUser(username string, encryptedPassword []byte, role Role) *User {
	topics := make(map[string]string, len(defaultTopics))
	for _, topic := range defaultTopics {
		topics[topic] = DefaultProficiency
	}

	return &User{
		Username:   username,
		Password:   encryptedPassword,
		Role:       role,
		Topics:     topics,
		GroupNames: make(map[string]struct{}),
	}
}

// AddGroupName records membership in the named group.
func (u *User) AddGroupName(name string) {
	if u.GroupNames == nil {
		u.GroupNames = make(map[string]struct{})
	}
	u.GroupNames[name] = struct{}{}
}

// RemoveGroupName clears membership in the named group.
func (u *User) RemoveGroupName(name string) {
	delete(u.GroupNames, name)
}

// InGroup reports whether the user is a member of the named group.
func (u *User) InGroup(name string) bool {
	_, ok := u.GroupNames[name]
	return ok
}

// TopicProficiency returns the user's level for the given topic, falling back
// to [DefaultProficiency] for topics that were never rated.
func (u *User) TopicProficiency(topic string) string {
	if level, ok := u.Topics[topic]; ok {
		return level
	}
	return DefaultProficiency
}

// SetTopicProficiency records the user's level for the given topic.
func (u *User) SetTopicProficiency(topic, level string) {
	if u.Topics == nil {
		u.Topics = make(map[string]string)
	}
	u.Topics[topic] = level
}

// AddHelpArticle appends an article to the user's collection.
func (u *User) AddHelpArticle(a *Article) {
	u.Articles = append(u.Articles, a)
}

// RemoveHelpArticle deletes every article with the given id from the user's
// collection.
func (u *User) RemoveHelpArticle(id int64) {
	kept := u.Articles[:0]
	for _, a := range u.Articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	// Release trailing references so removed articles can be collected.
	for i := len(kept); i < len(u.Articles); i++ {
		u.Articles[i] = nil
	}
	u.Articles = kept
}

// FindHelpArticle returns the first article with the given id, or nil.
func (u *User) FindHelpArticle(id int64) *Article {
	for _, a := range u.Articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ClearHelpArticles empties the user's article collection.
func (u *User) ClearHelpArticles() {
	u.Articles = nil
}

// GetAllHelpArticles returns a copy of the user's article collection. The
// returned slice is independent of the internal one; callers cannot grow or
// shrink the collection through it.
func (u *User) GetAllHelpArticles() []*Article {
	out := make([]*Article, len(u.Articles))
	copy(out, u.Articles)
	return out
}

// GetHelpArticlesByGroup returns the user's articles tagged with the given
// group. The special group name "all" (case-insensitive) returns every
// article.
func (u *User) GetHelpArticlesByGroup(group string) []*Article {
	if strings.EqualFold(group, "all") {
		return u.GetAllHelpArticles()
	}

	var filtered []*Article
	for _, a := range u.Articles {
		if a.InGroup(group) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
