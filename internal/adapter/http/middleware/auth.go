package middleware

import (
	"net/http"
	"portal_electro/internal/session"
	"portal_electro/pkg"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const HeaderUserID = "X-User-ID"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// Credentials attaches the caller's bearer token and optional portal user id to the
// request context. Requests without a token are rejected.
func Credentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := session.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		creds := session.Credentials{Token: token}
		if raw := strings.TrimSpace(c.GetHeader(HeaderUserID)); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				appErr := pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid "+HeaderUserID+" header", http.StatusBadRequest)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			creds.UserID = userID
		}

		c.Request = c.Request.WithContext(session.WithCredentials(c.Request.Context(), creds))
		c.Next()
	}
}
