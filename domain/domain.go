package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gobuffalo/envy"
	i18n "github.com/gobuffalo/mw-i18n/v2"
	"github.com/gofrs/uuid"
	"github.com/kelseyhightower/envconfig"
)

var (
	// Logger is a plain instance of log.Logger, normally set to stdout
	Logger log.Logger

	// ErrLogger is an instance of ErrLogProxy, and is the only error logging
	// mechanism that can be used without access to the Buffalo context.
	ErrLogger ErrLogProxy
)

// T is the Buffalo i18n translator
var T *i18n.Translator

// Context keys
const (
	ContextKeyCurrentUser = "current_user"
	ContextKeyExtras      = "extras"
	ContextKeyTx          = "tx"

	EventPayloadID = "id"
)

const (
	DateFormat  = "2006-01-02"
	ContentJson = "application/json"

	// ClaimReferencePrefix starts every human-facing claim reference number
	ClaimReferencePrefix = "PRET"

	EnvTest        = "test"
	EnvDevelopment = "development"
)

// Event Kinds
const (
	EventApiClaimCreated         = "api:claim:created"
	EventApiClaimStatusChanged   = "api:claim:statuschanged"
	EventApiClaimPartnerAssigned = "api:claim:partnerassigned"
	EventApiNotificationSent     = "api:notification:sent"
)

// SupportedCountries are the country codes accepted by the city lookup
var SupportedCountries = []string{"LT", "LV", "EE", "PL", "UA", "BY"}

// Env Holds the values of environment variables
var Env struct {
	GoEnv      string `ignored:"true"`
	AppName    string `default:"Rubineta Pretenzijos" split_words:"true"`
	ServerPort int    `default:"3000" split_words:"true"`
	UIURL      string `default:"https://pretenzijos-sistema.onrender.com" envconfig:"UI_URL"`

	SessionSecret string `default:"buffalo-session-secret" split_words:"true"`
	SentryDSN     string `default:"" envconfig:"SENTRY_DSN"`

	EmailService     string `default:"mailjet" split_words:"true"`
	EmailFromAddress string `default:"pretenzijos@rubineta.lt" split_words:"true"`
	EmailFromName    string `default:"Rubineta Pretenzijos" split_words:"true"`
	QualityEmail     string `default:"kokybe@rubineta.lt" split_words:"true"`

	MailjetAPIURL    string `default:"https://api.mailjet.com/v3.1/send" envconfig:"MAILJET_API_URL"`
	MailjetAPIKey    string `default:"" envconfig:"MAILJET_API_KEY"`
	MailjetAPISecret string `default:"" envconfig:"MAILJET_API_SECRET"`

	SMTPHost     string `default:"smtp.gmail.com" envconfig:"SMTP_HOST"`
	SMTPPort     int    `default:"587" envconfig:"SMTP_PORT"`
	SMTPUser     string `default:"" envconfig:"SMTP_USER"`
	SMTPPassword string `default:"" envconfig:"SMTP_PASSWORD"`

	AwsRegion          string `split_words:"true"`
	AwsAccessKeyID     string `split_words:"true"`
	AwsSecretAccessKey string `split_words:"true"`

	GeonamesURL         string `default:"http://api.geonames.org" envconfig:"GEONAMES_URL"`
	GeonamesUsername    string `default:"" split_words:"true"`
	GeonamesMaxRows     int    `default:"1000" split_words:"true"`
	CityCacheTTLMinutes int    `default:"1440" envconfig:"CITY_CACHE_TTL_MINUTES"`
	CityResultLimit     int    `default:"50" split_words:"true"`

	CatalogAPIURL         string `default:"" envconfig:"CATALOG_API_URL"`
	CatalogConsumerKey    string `default:"" split_words:"true"`
	CatalogConsumerSecret string `default:"" split_words:"true"`

	ListenerDelayMilliseconds int `default:"1000" split_words:"true"`
	ListenerMaxRetries        int `default:"10" split_words:"true"`
}

func init() {
	readEnv()
	Logger.SetOutput(os.Stdout)
	ErrLogger.SetOutput(os.Stderr)
	ErrLogger.InitSentry()
}

// readEnv loads environment data into `Env`
func readEnv() {
	if err := envconfig.Process("", &Env); err != nil {
		log.Fatal(errors.New("error loading env vars: " + err.Error()))
	}

	// Doing this separately to avoid needing two environment variables for the same thing
	Env.GoEnv = envy.Get("GO_ENV", EnvDevelopment)
}

// ErrLogProxy is a "tee" that sends to Sentry and to the local logger,
// normally set to stderr. Sentry is disabled if `GoEnv` is "test".
type ErrLogProxy struct {
	LocalLog log.Logger
}

func (e *ErrLogProxy) SetOutput(w io.Writer) {
	e.LocalLog.SetOutput(w)
}

func (e *ErrLogProxy) Printf(format string, a ...any) {
	e.LocalLog.Printf(format, a...)

	// Only send to remote log if not in test env
	if Env.GoEnv == EnvTest || Env.SentryDSN == "" {
		return
	}
	sentry.CaptureMessage(fmt.Sprintf(format, a...))
}

func (e *ErrLogProxy) InitSentry() {
	if Env.SentryDSN == "" {
		return
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         Env.SentryDSN,
		Environment: Env.GoEnv,
	}); err != nil {
		e.LocalLog.Printf("sentry.Init: %s", err)
	}
}

// GetUUID creates a new, unique version 4 (random) UUID and returns it.
// Errors are ignored.
func GetUUID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		ErrLogger.Printf("error creating new uuid ... %v", err)
	}
	return id
}

// EmailFromAddress combines the configured sender name with the configured
// from address for use in an email From header.
func EmailFromAddress() string {
	return Env.EmailFromName + " <" + Env.EmailFromAddress + ">"
}

// IsOtherThanNoRows returns false if the error is nil or is just reporting that there
// were no rows in the result set for a sql query.
func IsOtherThanNoRows(err error) bool {
	if err == nil {
		return false
	}

	if strings.Contains(err.Error(), sql.ErrNoRows.Error()) {
		return false
	}

	return true
}

// MergeExtras returns a single map with all the key-value pairs of the input maps.
// Key-value pairs in later maps overwrite matching ones from earlier maps.
func MergeExtras(extras []map[string]any) map[string]any {
	allExtras := map[string]any{}

	if len(extras) == 1 {
		return extras[0]
	}

	for _, e := range extras {
		for k, v := range e {
			allExtras[k] = v
		}
	}

	return allExtras
}

// IsStringInSlice iterates over a slice of strings, looking for the given
// string. If found, true is returned. Otherwise, false is returned.
func IsStringInSlice(needle string, haystack []string) bool {
	for _, hs := range haystack {
		if needle == hs {
			return true
		}
	}

	return false
}

func RandomString(n int, includeLetters string) string {
	if includeLetters == "" {
		includeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	}
	letters := []rune(includeLetters)
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))] // #nosec G404
	}
	return string(b)
}

// NewClaimReference generates a timestamp-prefixed reference number, e.g.
// PRET-1712345678901-X4Tx. Uniqueness is by construction, not enforced.
func NewClaimReference() string {
	return fmt.Sprintf("%s-%d-%s", ClaimReferencePrefix, time.Now().UnixMilli(), RandomString(4, ""))
}

// GetFunctionName provides the filename, line number, and function name of the caller, skipping the top `skip`
// functions on the stack.
func GetFunctionName(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}

	fn := runtime.FuncForPC(pc)
	return fmt.Sprintf("%s:%d %s", file, line, fn.Name())
}
