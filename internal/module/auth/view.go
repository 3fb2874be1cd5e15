// Package auth provides the login page. Credential checks happen in the
// backend; this page only collects them and links into the admin.
package auth

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/router"
)

// LoginTemplate is the login page template.
const LoginTemplate = "auth/login.html"

// LoginView renders the login page.
type LoginView struct {
	next string
}

var _ router.View = LoginView{}

// NewLoginView returns the login view. next is the path the sign-in form
// continues to.
func NewLoginView(next string) LoginView {
	if next == "" {
		next = "/"
	}
	return LoginView{next: next}
}

// Template implements router.View.
func (v LoginView) Template() string { return LoginTemplate }

// Load implements router.View.
func (v LoginView) Load(context.Context) (gin.H, error) {
	return gin.H{"Next": v.next}, nil
}
