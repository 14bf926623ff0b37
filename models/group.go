package models

// Group is a named collection of users partitioned by role. A group can be a
// general group or a special-access group; the flag is informational and does
// not affect membership rules.
//
// The three membership lists are disjoint by construction for role-based
// additions, with one exception: the first instructor added to a group is
// also inserted into the admin list (and therefore appears in two lists).
type Group struct {
	// Name is the unique group identifier.
	Name string `json:"name"`

	// SpecialAccess marks the group as a special-access group.
	SpecialAccess bool `json:"special_access"`

	Admins      []*User `json:"-"`
	Instructors []*User `json:"-"`
	Students    []*User `json:"-"`
}

// NewGroup constructs an empty group.
func NewGroup(name string, specialAccess bool) *Group {
	return &Group{
		Name:          name,
		SpecialAccess: specialAccess,
	}
}

// AddUser inserts the user into the membership list matching their role and
// records the group name on the user. A duplicate addition is a no-op that
// returns false, as is an unrecognized role.
//
// Promotion rule: when an instructor is added and the admin list is empty,
// that instructor is also appended to the admin list. Later instructors are
// not promoted.
func (g *Group) AddUser(u *User) bool {
	switch u.Role {
	case RoleAdmin:
		if containsUser(g.Admins, u) {
			return false
		}
		g.Admins = append(g.Admins, u)

	case RoleInstructor:
		if containsUser(g.Instructors, u) {
			return false
		}
		g.Instructors = append(g.Instructors, u)
		if len(g.Admins) == 0 {
			g.Admins = append(g.Admins, u)
		}

	case RoleStudent:
		if containsUser(g.Students, u) {
			return false
		}
		g.Students = append(g.Students, u)

	default:
		return false
	}

	u.AddGroupName(g.Name)
	return true
}

// RemoveUser deletes the user from every membership list they appear in
// (a promoted instructor is removed from both the instructor and the admin
// list). The group name is cleared from the user's membership set only when
// at least one removal occurred.
func (g *Group) RemoveUser(u *User) bool {
	removed := false
	if list, ok := removeUser(g.Admins, u); ok {
		g.Admins = list
		removed = true
	}
	if list, ok := removeUser(g.Instructors, u); ok {
		g.Instructors = list
		removed = true
	}
	if list, ok := removeUser(g.Students, u); ok {
		g.Students = list
		removed = true
	}

	if removed {
		u.RemoveGroupName(g.Name)
	}
	return removed
}

// Membership equality is by username, the account's primary key.
func containsUser(list []*User, u *User) bool {
	for _, member := range list {
		if member.Username == u.Username {
			return true
		}
	}
	return false
}

func removeUser(list []*User, u *User) ([]*User, bool) {
	for i, member := range list {
		if member.Username == u.Username {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
