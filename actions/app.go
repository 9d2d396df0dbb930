package actions

import (
	"fmt"
	"net/http"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/buffalo-pop/v3/pop/popmw"
	contenttype "github.com/gobuffalo/mw-contenttype"
	i18n "github.com/gobuffalo/mw-i18n/v2"
	paramlogger "github.com/gobuffalo/mw-paramlogger"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"

	"github.com/rubineta/claims-api/catalog"
	"github.com/rubineta/claims-api/domain"
	"github.com/rubineta/claims-api/geo"
	applog "github.com/rubineta/claims-api/log"
	"github.com/rubineta/claims-api/locales"
	"github.com/rubineta/claims-api/models"
	"github.com/rubineta/claims-api/public"
)

var (
	app *buffalo.App

	cityLookup    *geo.Client
	productLookup *catalog.Client
)

// App is where all routes and middleware for buffalo
// should be defined. This is the nerve center of your
// application.
//
// Routing, middleware, groups, etc... are declared TOP -> DOWN.
// This means if you add a middleware to `app` *after* declaring a
// group, that group will NOT have that new middleware. The same
// is true of resource declarations as well.
//
// It also means that routes are checked in the order they are declared.
// `ServeFiles` is a CATCH-ALL route, so it should always be
// placed last in the route declarations, as it will prevent routes
// declared after it to never be called.
func App() *buffalo.App {
	if app == nil {
		app = buffalo.New(buffalo.Options{
			Env:  domain.Env.GoEnv,
			Addr: fmt.Sprintf("0.0.0.0:%d", domain.Env.ServerPort),
			PreWares: []buffalo.PreWare{
				cors.New(cors.Options{
					AllowCredentials: true,
					AllowedOrigins:   []string{domain.Env.UIURL},
					AllowedMethods:   []string{"HEAD", "GET", "POST", "PUT", "PATCH", "DELETE"},
					AllowedHeaders:   []string{"*"},
				}).Handler,
			},
			SessionName:  "_pretenzijos_session",
			SessionStore: sessions.NewCookieStore([]byte(domain.Env.SessionSecret)),
		})

		var err error
		domain.T, err = i18n.New(locales.FS(), "en")
		if err != nil {
			_ = app.Stop(err)
		}
		app.Use(domain.T.Middleware())

		// Report panics and handler errors to Sentry.
		app.Use(applog.SentryMiddleware)
		if hook := applog.NewSentryHook(); hook != nil {
			domain.AddLogHook(hook)
		}

		// Log request parameters (filters apply).
		app.Use(paramlogger.ParameterLogger)

		// Set the request content type to JSON
		app.Use(contenttype.Set("application/json"))

		// Wraps each request in a transaction.
		app.Use(popmw.Transaction(models.DB))

		// Load the logged-in user, if any, from the session.
		app.Use(setCurrentUser)

		registerCustomErrorHandler(app)

		cityLookup = geo.NewClient()
		productLookup = catalog.NewClient()

		app.GET("/", homeHandler)
		app.GET("/status", statusHandler)

		// notification dispatch
		app.POST("/send-confirmation", sendConfirmation)
		app.POST("/send-to-partner", sendToPartner)
		app.POST("/notify-quality", notifyQuality)
		app.POST("/notify-resolved", notifyResolved)
		app.POST("/notify-status-change", notifyStatusChange)
		app.POST("/send-feedback-survey", sendFeedbackSurvey)
		app.POST("/send-password-reset", sendPasswordReset)

		apiGroup := app.Group("/api")
		apiGroup.POST("/login", login)
		apiGroup.GET("/countries", countriesList)
		apiGroup.GET("/cities", citiesList)
		apiGroup.GET("/products", productsList)
		apiGroup.GET("/claims", claimsList)
		apiGroup.POST("/claims", claimsCreate)
		apiGroup.GET("/claims/{id}", claimsView)
		apiGroup.POST("/update-status", claimsUpdateStatus)
		apiGroup.POST("/assign-partner", claimsAssignPartner)
		apiGroup.GET("/partners", partnersList)
		apiGroup.POST("/partners", partnersCreate)
		apiGroup.GET("/users", usersList)
		apiGroup.GET("/users/me", usersMe)

		// app shell and service worker, catch-all
		app.ServeFiles("/", http.FS(public.FS()))
	}

	return app
}
