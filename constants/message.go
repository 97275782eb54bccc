package constants

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input data"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read data from context"
	DATA_INPUT_IS_NOT_NUMBER   = "Input must be a number"
	NOT_FOUND_RECORDS          = "Record not found"
	ERROR_CREATE               = "Cannot create record"
	ERROR_UPDATE               = "Cannot update record"
	ERROR_DELETE               = "Cannot delete record"

	MISSING_LOGIN_INPUT   = "Username and password are required"
	INVALID_USERNAME      = "Invalid username"
	INVALID_PASSWORD      = "Invalid password"
	CAN_NOT_HASH_PASSWORD = "Cannot hash password"
	NOT_ADMIN             = "Admin access required"
	ACCOUNT_NOT_ACTIVE    = "Account is disabled"

	CRUISE_NOT_FOUND   = "Cruise not found"
	CRUISE_NOT_PRICED  = "Cruise has no price for this booking type"
	UNKNOWN_CLUB_CARD  = "Unknown club card"
	SLUG_EXISTS        = "Slug already used by another cruise"
	MEMBER_EXISTS      = "Username or email already registered"
	MEMBER_BANNED      = "Member is banned"
	MEMBER_NOT_FOUND   = "Member not found"
	MEMBER_REQUIRED    = "X-Member-Id header is required"
	NOT_POST_AUTHOR    = "Only the author can delete this post"
	AVAILABILITY_FULL  = "This departure is full"
	NOT_ENOUGH_PLACES  = "Not enough places left on this departure"
	UPLOAD_DISABLED    = "Image upload is not configured"
	POST_NOT_FOUND     = "Post not found"
	COMMENT_NOT_FOUND  = "Comment not found"
	MESSAGE_NOT_FOUND  = "Message not found"
	PAYMENT_NOT_FOUND  = "Payment not found"
	PAYMENT_DUPLICATE  = "A payment for this booking is already in progress"
	PAYMENT_DECLINED   = "Payment was declined"
	PAYMENT_GATEWAY    = "Payment gateway error"
	REFUND_NOT_ALLOWED = "Payment cannot be refunded"
	REFUND_TOO_LARGE   = "Refund amount exceeds the paid amount"
	UPLOAD_FAILED      = "Cannot upload image"
	SEND_EMAIL_FAILED  = "Cannot send email"
)
