package openweather

import "errors"

// ErrLocationNotFound means the provider has no data for the requested
// location name. Any other error from the client is an upstream failure
// (network, auth, rate limit, malformed response).
var ErrLocationNotFound = errors.New("openweather: location not found")
