// Package fetcher implements the single-attempt price fetch.
//
// FetchPrice performs one request against the quote endpoint and either returns a
// validated model.Price or a *Error whose Kind classifies the failure:
//
//	timeout             no response within the configured timeout
//	connection_error    the transport could not be established
//	http_error          4xx/5xx status (Status, Reason)
//	request_error       any other transport fault
//	malformed_response  body is not the expected JSON shape
//	missing_field       asset or currency key absent (Field)
//	invalid_type        the quoted value is not a JSON number
//	conversion_error    the number does not fit a float64
//	implausible_value   value <= 0 or > max price (Value)
//	unexpected_error    anything the classifier does not recognise
//
// The fetcher never prints; surfacing failures is the caller's job.
package fetcher
