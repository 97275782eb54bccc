package constants

const (
	LangFR = "fr"
	LangEN = "en"

	DefaultLang = LangFR
)

// Locals keys
const (
	LocalLang     = "lang"
	LocalMemberID = "memberId"
	LocalUser     = "user"
)

const (
	CaptainID     = "captain-sognudimare"
	CaptainName   = "Capitaine Sognudimare"
	CaptainAvatar = "captain"

	MessagePreviewLength = 50
)

// Booking types
const (
	BookingCabin   = "cabin"
	BookingPrivate = "private"
	BookingBoth    = "both"
)

// Availability status
const (
	AvailabilityAvailable = "available"
	AvailabilityLimited   = "limited"
	AvailabilityFull      = "full"

	LimitedPlacesThreshold = 4
)

// Payment status
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

const Currency = "EUR"

var PostCategories = []string{"general", "trip_report", "tips", "meetup"}
