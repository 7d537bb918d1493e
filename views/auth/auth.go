// Package auth renders the Clerk-hosted sign-in, sign-up and sign-out
// pages. These pages are standalone: /logout runs outside the auth
// provider, so none of them use layout.Base.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const clerkScriptURL = "https://cdn.jsdelivr.net/npm/@clerk/clerk-js@5/dist/clerk.browser.js"

// SignIn mounts Clerk's sign-in widget and returns to redirectURL afterwards
func SignIn(publishableKey, redirectURL string) templ.Component {
	return page("Sign in", publishableKey, fmt.Sprintf(
		`Clerk.mountSignIn(document.getElementById("clerk"), {forceRedirectUrl: %s, signUpUrl: "/signup"});`,
		jsString(redirectURL),
	))
}

// SignUp mounts Clerk's sign-up widget
func SignUp(publishableKey string) templ.Component {
	return page("Sign up", publishableKey,
		`Clerk.mountSignUp(document.getElementById("clerk"), {forceRedirectUrl: "/", signInUrl: "/login"});`)
}

// SignOut ends the Clerk client session and returns home. Server-side
// cookies are already cleared by the time this renders.
func SignOut(publishableKey string) templ.Component {
	return page("Signing out", publishableKey,
		`Clerk.signOut().finally(function () { window.location.href = "/"; });`)
}

func page(title, publishableKey, script string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s | ClubHub</title><script async crossorigin="anonymous" data-clerk-publishable-key="%s" src="%s"></script></head><body><div id="clerk" class="flex min-h-screen items-center justify-center"></div><script>window.addEventListener("load", function () { window.Clerk.load().then(function () { %s }); });</script></body></html>`,
			templ.EscapeString(title),
			templ.EscapeString(publishableKey),
			clerkScriptURL,
			script,
		)
		return err
	})
}

// jsString quotes s for a script block; json.Marshal escapes <, > and &
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `"/"`
	}
	return string(b)
}
