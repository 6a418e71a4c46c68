package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"movies/internal/delivery/http/dto"
	"movies/internal/usecase"
)

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

func (c *HTTP) Validate(ctx context.Context, email, password string) (dto.ValidationResponse, error) {
	var out dto.ValidationResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/signin/validate", dto.ValidateCredentialsRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *HTTP) OpenSession(ctx context.Context) (dto.SessionResponse, error) {
	var out dto.SessionResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/sessions", nil, &out)
	return out, err
}

func (c *HTTP) Session(ctx context.Context, id uuid.UUID) (dto.SessionResponse, error) {
	var out dto.SessionResponse
	err := c.do(ctx, http.MethodGet, sessionPath(id, ""), nil, &out)
	return out, err
}

func (c *HTTP) SignOut(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, ""), nil, nil)
}

func (c *HTTP) UpdateSignIn(ctx context.Context, id uuid.UUID, email, password *string) (dto.SignInFormResponse, error) {
	var out dto.SignInFormResponse
	err := c.do(ctx, http.MethodPut, sessionPath(id, "/signin"), dto.UpdateSignInFormRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *HTTP) TogglePasswordVisibility(ctx context.Context, id uuid.UUID) (dto.SignInFormResponse, error) {
	var out dto.SignInFormResponse
	err := c.do(ctx, http.MethodPost, sessionPath(id, "/signin/visibility"), nil, &out)
	return out, err
}

// SubmitSignIn returns the validation result even when the server rejects
// the credentials with 422.
func (c *HTTP) SubmitSignIn(ctx context.Context, id uuid.UUID) (dto.ValidationResponse, error) {
	var out dto.ValidationResponse
	err := c.do(ctx, http.MethodPost, sessionPath(id, "/signin"), nil, &out)
	return out, err
}

func (c *HTTP) Profile(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodGet, id, "", nil)
}

func (c *HTTP) BeginEdit(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPost, id, "/edit", nil)
}

func (c *HTTP) UpdateBuffer(ctx context.Context, id uuid.UUID, first, last string) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPut, id, "/edit", dto.ProfileNamesRequest{FirstName: first, LastName: last})
}

func (c *HTTP) ConfirmEdit(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPost, id, "/edit/confirm", nil)
}

func (c *HTTP) CancelEdit(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPost, id, "/edit/cancel", nil)
}

func (c *HTTP) ToggleEdit(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPost, id, "/toggle", nil)
}

func (c *HTTP) CommitProfile(ctx context.Context, id uuid.UUID, first, last string) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPut, id, "", dto.ProfileNamesRequest{FirstName: first, LastName: last})
}

func (c *HTTP) SetAvatar(ctx context.Context, id uuid.UUID, ref string) (usecase.ProfileView, error) {
	return c.profile(ctx, http.MethodPut, id, "/avatar", dto.AvatarRequest{AvatarRef: ref})
}

func (c *HTTP) OpenReview(ctx context.Context, id uuid.UUID, movieID string) (usecase.ComposerView, error) {
	var out usecase.ComposerView
	err := c.do(ctx, http.MethodPost, sessionPath(id, "/movies/"+url.PathEscape(movieID)+"/review"), nil, &out)
	return out, err
}

func (c *HTTP) Review(ctx context.Context, id uuid.UUID) (usecase.ComposerView, error) {
	var out usecase.ComposerView
	err := c.do(ctx, http.MethodGet, sessionPath(id, "/review"), nil, &out)
	return out, err
}

func (c *HTTP) SetReviewText(ctx context.Context, id uuid.UUID, text string) (usecase.ComposerView, error) {
	var out usecase.ComposerView
	err := c.do(ctx, http.MethodPut, sessionPath(id, "/review/text"), dto.ReviewTextRequest{Text: text}, &out)
	return out, err
}

func (c *HTTP) SetReviewRating(ctx context.Context, id uuid.UUID, rating int) (usecase.ComposerView, error) {
	var out usecase.ComposerView
	err := c.do(ctx, http.MethodPut, sessionPath(id, "/review/rating"), dto.ReviewRatingRequest{Rating: &rating}, &out)
	return out, err
}

func (c *HTTP) SubmitReview(ctx context.Context, id uuid.UUID) (dto.ReviewResponse, error) {
	var out dto.ReviewResponse
	err := c.do(ctx, http.MethodPost, sessionPath(id, "/review/submit"), nil, &out)
	return out, err
}

func (c *HTTP) CancelReview(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id, "/review"), nil, nil)
}

func (c *HTTP) Movies(ctx context.Context) ([]usecase.MovieSummary, error) {
	var out []usecase.MovieSummary
	err := c.do(ctx, http.MethodGet, "/api/v1/movies", nil, &out)
	return out, err
}

func (c *HTTP) Movie(ctx context.Context, movieID string) (dto.MovieDetailsResponse, error) {
	var out dto.MovieDetailsResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/movies/"+url.PathEscape(movieID), nil, &out)
	return out, err
}

func (c *HTTP) ToggleBookmark(ctx context.Context, id uuid.UUID, movieID string) (dto.BookmarkResponse, error) {
	var out dto.BookmarkResponse
	err := c.do(ctx, http.MethodPost, sessionPath(id, "/movies/"+url.PathEscape(movieID)+"/bookmark"), nil, &out)
	return out, err
}

func (c *HTTP) Saved(ctx context.Context, id uuid.UUID) ([]usecase.MovieSummary, error) {
	var out []usecase.MovieSummary
	err := c.do(ctx, http.MethodGet, sessionPath(id, "/saved"), nil, &out)
	return out, err
}

func (c *HTTP) profile(ctx context.Context, method string, id uuid.UUID, suffix string, in any) (usecase.ProfileView, error) {
	var out usecase.ProfileView
	err := c.do(ctx, method, sessionPath(id, "/profile"+suffix), in, &out)
	return out, err
}

func sessionPath(id uuid.UUID, suffix string) string {
	return "/api/v1/sessions/" + id.String() + suffix
}

func (c *HTTP) do(ctx context.Context, method, path string, in any, out any) error {
	var body *bytes.Buffer
	if in != nil {
		body = new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return err
		}
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.Base+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.Base+path, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: %s: decode: %w", method, path, resp.Status, err)
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	if resp.StatusCode/100 != 2 {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return nil
}
