package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"resto-backend/internal/auth"
	"resto-backend/internal/cache"
	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

type contextKey string

const UserIDKey contextKey = "user_id"
const EmailKey contextKey = "email"
const StaffKey contextKey = "staff"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	staffRepo  *repositories.StaffRepository
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, staffRepo *repositories.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		staffRepo:  staffRepo,
	}
}

// Authenticate validates the bearer token, rejects revoked sessions and
// loads the linked staff profile into the request context. A user without
// a staff link stays authenticated; role checks happen in RequireRole.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)

		staff, err := m.staffRepo.GetByUserID(ctx, claims.UserID)
		if err == nil {
			ctx = context.WithValue(ctx, StaffKey, staff)
		} else if !errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, "Authorization header required", http.StatusUnauthorized)
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
		return nil, false
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return nil, false
	}

	// Tokens stay valid until expiry, so revocation is enforced here
	if reason, revoked := cache.SessionRevoked(r.Context(), claims.UserID); revoked {
		http.Error(w, "Session revoked: "+reason, http.StatusUnauthorized)
		return nil, false
	}

	return claims, true
}

// RequireRole allows only staff whose role is in the allowed set. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staff, ok := GetStaffFromContext(r.Context())
			if !ok {
				http.Error(w, "No staff profile linked to account", http.StatusForbidden)
				return
			}
			for _, role := range allowedRoles {
				if staff.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden: Insufficient permissions", http.StatusForbidden)
		})
	}
}

// RequireAdmin ensures the linked staff profile has the admin role
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole("admin")(next)
}

// GetUserIDFromContext extracts the authenticated user ID
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetEmailFromContext extracts the authenticated email
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetStaffFromContext extracts the linked staff profile, if any
func GetStaffFromContext(ctx context.Context) (*models.StaffMember, bool) {
	staff, ok := ctx.Value(StaffKey).(*models.StaffMember)
	return staff, ok
}
