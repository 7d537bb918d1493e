package auth

import (
	"testing"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/stretchr/testify/assert"
)

func TestProfileFullName(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"first and last", Profile{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Profile{FirstName: "Ada"}, "Ada"},
		{"last only", Profile{LastName: "Lovelace"}, "Lovelace"},
		{"username", Profile{Username: "ada"}, "ada"},
		{"email", Profile{Email: "ada@example.com"}, "ada@example.com"},
		{"nothing", Profile{}, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.FullName())
		})
	}
}

func TestProfileFromClerkUser(t *testing.T) {
	first := "Grace"
	image := "https://img.clerk.com/abc"

	profile := profileFromClerkUser(&clerk.User{
		ID:        "user_1",
		FirstName: &first,
		ImageURL:  &image,
	})

	assert.Equal(t, "user_1", profile.ClerkID)
	assert.Equal(t, "Grace", profile.FirstName)
	assert.Empty(t, profile.LastName)
	assert.Empty(t, profile.Email)
	assert.Equal(t, image, profile.ImageURL)

	assert.Nil(t, profileFromClerkUser(nil))
}
