package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestSignIn_ValidateIsStateless(t *testing.T) {
	env := newTestEnv(t)
	res := env.signIn.Validate("a@b.com", "password123")
	if !res.EmailValid || !res.PasswordValid {
		t.Fatalf("expected both valid, got %+v", res)
	}
	if got := env.pub.types(); len(got) != 0 {
		t.Fatalf("stateless validate must not publish, got %v", got)
	}
}

func TestSignIn_UpdateFormAndSubmit(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	ctx := context.Background()

	form, err := env.signIn.UpdateForm(ctx, id, SignInFormInput{Email: strPtr("abc")})
	if err != nil {
		t.Fatalf("update email: %v", err)
	}
	if form.Email != "abc" || form.Password != "" {
		t.Fatalf("unexpected form: %+v", form)
	}
	if _, err := env.signIn.UpdateForm(ctx, id, SignInFormInput{Password: strPtr("password123")}); err != nil {
		t.Fatalf("update password: %v", err)
	}

	res, err := env.signIn.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.EmailValid || !res.PasswordValid {
		t.Fatalf("expected email invalid and password valid, got %+v", res)
	}

	got := env.pub.types()
	if got[len(got)-1] != EventSignInValidated {
		t.Fatalf("expected %s last, got %v", EventSignInValidated, got)
	}
}

func TestSignIn_UpdateFormRequiresAField(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	_, err := env.signIn.UpdateForm(context.Background(), id, SignInFormInput{})
	mustErrIs(t, err, ErrInvalidInput)
}

func TestSignIn_TogglePasswordVisibility(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	ctx := context.Background()

	form, err := env.signIn.TogglePasswordVisibility(ctx, id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !form.PasswordVisible {
		t.Fatalf("expected visible after first toggle")
	}
	form, err = env.signIn.TogglePasswordVisibility(ctx, id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if form.PasswordVisible {
		t.Fatalf("expected hidden after second toggle")
	}
}

func TestSignIn_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.signIn.Submit(context.Background(), uuid.New())
	mustErrIs(t, err, ErrNotFound, ErrSessionNotFound)
}

func TestSignIn_SubmitDropsPassword(t *testing.T) {
	env := newTestEnv(t)
	id := env.open(t)
	ctx := context.Background()

	in := SignInFormInput{Email: strPtr("a@b.com"), Password: strPtr("password123")}
	if _, err := env.signIn.UpdateForm(ctx, id, in); err != nil {
		t.Fatalf("update form: %v", err)
	}
	res, err := env.signIn.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("expected valid result, got %+v", res)
	}

	snap, err := env.repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if snap.SignIn.Password != "" {
		t.Fatalf("password must not outlive the attempt, stored %q", snap.SignIn.Password)
	}
	if snap.SignIn.Email != "a@b.com" {
		t.Fatalf("email should be kept, got %q", snap.SignIn.Email)
	}

	res, err = env.signIn.Submit(ctx, id)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if res.PasswordValid {
		t.Fatalf("resubmit without re-entering the password should fail validation")
	}
}
