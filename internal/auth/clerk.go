package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

// Session is a verified Clerk session
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// Profile is the subset of a Clerk user we persist
type Profile struct {
	ClerkID   string
	Email     string
	FirstName string
	LastName  string
	Username  string
	ImageURL  string
}

// FullName picks the best display name available
func (p *Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	case p.Username != "":
		return p.Username
	case p.Email != "":
		return p.Email
	default:
		return "User"
	}
}

// SessionVerifier checks a session token and returns the session it carries
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// UserSource looks up a user's profile at the identity provider
type UserSource interface {
	GetProfile(ctx context.Context, clerkID string) (*Profile, error)
}

// ClerkVerifier verifies session JWTs against the JWKS of the instance
// configured with clerk.SetKey.
type ClerkVerifier struct{}

func (ClerkVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
		Token: token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify session token: %w", err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}

	session := &Session{UserID: claims.Subject}
	if claims.Expiry != nil {
		session.ExpiresAt = time.Unix(*claims.Expiry, 0)
	}
	return session, nil
}

// ClerkUsers fetches user profiles from the Clerk backend API
type ClerkUsers struct {
	client *user.Client
}

func NewClerkUsers() *ClerkUsers {
	return &ClerkUsers{
		client: user.NewClient(&clerk.ClientConfig{}),
	}
}

func (u *ClerkUsers) GetProfile(ctx context.Context, clerkID string) (*Profile, error) {
	clerkUser, err := u.client.Get(ctx, clerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return profileFromClerkUser(clerkUser), nil
}

func profileFromClerkUser(u *clerk.User) *Profile {
	if u == nil {
		return nil
	}
	return &Profile{
		ClerkID:   u.ID,
		Email:     primaryEmail(u),
		FirstName: deref(u.FirstName),
		LastName:  deref(u.LastName),
		Username:  deref(u.Username),
		ImageURL:  deref(u.ImageURL),
	}
}

func primaryEmail(u *clerk.User) string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}

	primaryID := deref(u.PrimaryEmailAddressID)
	for _, email := range u.EmailAddresses {
		if email.ID == primaryID {
			return email.EmailAddress
		}
	}

	return u.EmailAddresses[0].EmailAddress
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
