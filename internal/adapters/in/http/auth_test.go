package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, subject string, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, kernel.UUID, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		resolvedID  kernel.UUID
		resolveErr  error
		nextReached bool
	)
	next := func(c echo.Context) error {
		nextReached = true
		resolvedID, resolveErr = NewContextIdentityProvider().CurrentUser(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	err := Authenticate(testSecret)(next)(c)
	require.NoError(t, err)

	if !nextReached {
		return rec, kernel.UUID{}, nil
	}
	return rec, resolvedID, resolveErr
}

func TestAuthenticate_ValidToken_InjectsUser(t *testing.T) {
	userID := kernel.NewUUID()
	header := "Bearer " + signToken(t, userID.String(), testSecret)

	rec, resolvedID, err := runMiddleware(t, header)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, userID.IsEqual(resolvedID))
}

func TestAuthenticate_MissingHeader_Unauthorized(t *testing.T) {
	rec, _, _ := runMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader_Unauthorized(t *testing.T) {
	rec, _, _ := runMiddleware(t, signToken(t, kernel.NewUUID().String(), testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret_Unauthorized(t *testing.T) {
	header := "Bearer " + signToken(t, kernel.NewUUID().String(), []byte("other-secret"))
	rec, _, _ := runMiddleware(t, header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonUUIDSubject_Unauthorized(t *testing.T) {
	header := "Bearer " + signToken(t, "not-a-uuid", testSecret)
	rec, _, _ := runMiddleware(t, header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContextIdentityProvider_NoUser_ReturnsUnauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := NewContextIdentityProvider().CurrentUser(req.Context())

	require.Error(t, err)
	var unauthenticated *errs.UnauthenticatedError
	assert.ErrorAs(t, err, &unauthenticated)
}
