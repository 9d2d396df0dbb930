package api

const (
	CategoryDatabase     = ErrorCategory("Database")
	CategoryUser         = ErrorCategory("User") // used for errors related to user input, validation, etc.
	CategoryUnauthorized = ErrorCategory("Unauthorized")
	CategoryNotFound     = ErrorCategory("NotFound")
	CategoryInternal     = ErrorCategory("Internal") // used for internal server errors, not related to bad user input
	CategoryUpstream     = ErrorCategory("Upstream") // used when a third-party dependency returns a failure
)

const (
	// General

	ErrorCreateFailure         = ErrorKey("ErrorCreateFailure")
	ErrorDestroyFailure        = ErrorKey("ErrorDestroyFailure")
	ErrorGenericInternalServer = ErrorKey("ErrorGenericInternalServer")
	ErrorForeignKeyViolation   = ErrorKey("ErrorForeignKeyViolation")
	ErrorInvalidRequestBody    = ErrorKey("ErrorInvalidRequestBody")
	ErrorNoRows                = ErrorKey("ErrorNoRows")
	ErrorQueryFailure          = ErrorKey("ErrorQueryFailure")
	ErrorSaveFailure           = ErrorKey("ErrorSaveFailure")
	ErrorTransactionNotFound   = ErrorKey("ErrorTransactionNotFound")
	ErrorUniqueKeyViolation    = ErrorKey("ErrorUniqueKeyViolation")
	ErrorUnknown               = ErrorKey("ErrorUnknown")
	ErrorUpdateFailure         = ErrorKey("ErrorUpdateFailure")
	ErrorValidation            = ErrorKey("ErrorValidation")

	// Authentication
	ErrorInvalidCredentials = ErrorKey("ErrorInvalidCredentials")

	// Claim
	ErrorClaimNotFound   = ErrorKey("ErrorClaimNotFound")
	ErrorPartnerNotFound = ErrorKey("ErrorPartnerNotFound")

	// Notifications
	ErrorNotificationMissingField = ErrorKey("ErrorNotificationMissingField")
	ErrorSendingEmail             = ErrorKey("ErrorSendingEmail")

	// Lookups
	ErrorGeonamesFailure       = ErrorKey("ErrorGeonamesFailure")
	ErrorGeonamesNotConfigured = ErrorKey("ErrorGeonamesNotConfigured")
	ErrorCatalogFailure        = ErrorKey("ErrorCatalogFailure")
	ErrorUnsupportedCountry    = ErrorKey("ErrorUnsupportedCountry")
)
