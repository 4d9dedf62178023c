package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"marketplace/internal/auth"
	"marketplace/internal/config"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/handler"
)

// identityKey is the context key under which the admin middleware stores
// the live identity.
const identityKey = "identity"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard *auth.Guard,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	sellerHandler *handler.SellerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/products", productHandler.ListProducts)
	e.GET("/products/:id", productHandler.GetProduct)

	// Authenticated routes: the JWT middleware checks signature and expiry;
	// ownership and role decisions happen further in.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SecretKey),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", userHandler.Me)
	secured.GET("/sellers", sellerHandler.ListSellers)
	secured.GET("/sellers/:id", sellerHandler.GetSeller)
	secured.POST("/orders", orderHandler.CreateOrder)
	secured.GET("/orders", orderHandler.ListOrders)
	secured.GET("/orders/:id", orderHandler.GetOrder)
	secured.DELETE("/orders/:id", orderHandler.DeleteOrder)

	// Admin routes: the guard re-reads the user record on every call so a
	// demoted account's still-valid token is rejected.
	admin := e.Group("", adminRequired(guard))

	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/sellers", sellerHandler.CreateSeller)
	admin.DELETE("/sellers/:id", sellerHandler.DeleteSeller)
	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)
	admin.DELETE("/products/:id", productHandler.DeleteProduct)
	admin.POST("/seed/catalog", seedHandler.ImportCatalog)
}

// adminRequired gates a route on the guard's live admin check.
func adminRequired(guard *auth.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return mapError(apperrors.ErrInvalidToken)
			}

			identity, err := guard.RequireAdmin(c.Request().Context(), token)
			if err != nil {
				return mapError(err)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func mapError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
