package market

import (
	"errors"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")

// CurrentUser returns the signed-in user.
func (s *State) CurrentUser() (User, bool) {
	if s.currentUserID == "" {
		return User{}, false
	}
	return s.store.User(s.currentUserID)
}

func (s *State) SignedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// LoginDemo signs in the first user holding role. Nothing happens when no
// such user exists.
func (s *State) LoginDemo(role Role) bool {
	u, ok := s.store.FirstWithRole(role)
	if !ok {
		s.log.Debug().Str("role", string(role)).Msg("demo login: no user with role")
		return false
	}
	s.signIn(u, HomeView(u.Role))
	return true
}

// LoginWithEmail signs in the user owning email. No password is involved.
func (s *State) LoginWithEmail(email string) error {
	u, ok := s.store.UserByEmail(strings.TrimSpace(email))
	if !ok {
		return ErrUserNotFound
	}
	s.signIn(u, HomeView(u.Role))
	return nil
}

// Register creates a user account and signs it in. Email uniqueness is not
// checked.
func (s *State) Register(name, email string) User {
	u := User{
		ID:    "u-" + s.ids.NewID(),
		Name:  name,
		Email: email,
		Role:  RoleUser,
	}
	s.store.AddUser(u)
	s.signIn(u, ViewUser)
	return u
}

func (s *State) Logout() {
	s.log.Debug().Str("user_id", s.currentUserID).Msg("logout")
	s.currentUserID = ""
	s.router.Navigate(ViewMarket)
}

// UpdateAvatar changes the signed-in user's avatar.
func (s *State) UpdateAvatar(avatar string) bool {
	u, ok := s.CurrentUser()
	if !ok {
		return false
	}
	u.Avatar = strings.TrimSpace(avatar)
	return s.store.UpdateUser(u)
}

func (s *State) signIn(u User, home View) {
	s.currentUserID = u.ID
	s.router.Navigate(home)
	s.log.Debug().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("signed in")
}
