package auth

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn_EscapesRedirect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SignIn("pk_test_123", `/clubs"</script><script>alert(1)`).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `data-clerk-publishable-key="pk_test_123"`)
	assert.Contains(t, html, "mountSignIn")
	assert.NotContains(t, html, "</script><script>alert(1)")
}

func TestSignOut_RendersWithoutAuthContext(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SignOut("pk_test_123").Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "Clerk.signOut()")
}

func TestSignUp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SignUp("pk").Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "mountSignUp")
}
