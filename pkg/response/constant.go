package response

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage is sent for unexpected failures so internals
	// never leak to the client.
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
)
