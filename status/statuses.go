/*
   Copyright 2025 The Probx Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

// 1xx informational
const (
	Continue           Status = 100
	SwitchingProtocols Status = 101
	Processing         Status = 102
	EarlyHints         Status = 103

	// Checkpoint was a non-standard resumable-request code that shared
	// 103 with Early Hints.
	//
	// Deprecated: use EarlyHints.
	Checkpoint Status = 103
)

// 2xx success
const (
	OK                          Status = 200
	Created                     Status = 201
	Accepted                    Status = 202
	NonAuthoritativeInformation Status = 203
	NoContent                   Status = 204
	ResetContent                Status = 205
	PartialContent              Status = 206
	MultiStatus                 Status = 207
	AlreadyReported             Status = 208
	IMUsed                      Status = 226
)

// 3xx redirection
const (
	MultipleChoices   Status = 300
	MovedPermanently  Status = 301
	Found             Status = 302
	SeeOther          Status = 303
	NotModified       Status = 304
	UseProxy          Status = 305
	TemporaryRedirect Status = 307
	PermanentRedirect Status = 308
)

// 4xx client errors
const (
	BadRequest                  Status = 400
	Unauthorized                Status = 401
	PaymentRequired             Status = 402
	Forbidden                   Status = 403
	NotFound                    Status = 404
	MethodNotAllowed            Status = 405
	NotAcceptable               Status = 406
	ProxyAuthenticationRequired Status = 407
	RequestTimeout              Status = 408
	Conflict                    Status = 409
	Gone                        Status = 410
	LengthRequired              Status = 411
	PreconditionFailed          Status = 412
	ContentTooLarge             Status = 413
	URITooLong                  Status = 414
	UnsupportedMediaType        Status = 415
	RangeNotSatisfiable         Status = 416
	ExpectationFailed           Status = 417
	IAmATeapot                  Status = 418
	MisdirectedRequest          Status = 421
	UnprocessableEntity         Status = 422
	Locked                      Status = 423
	FailedDependency            Status = 424
	TooEarly                    Status = 425
	UpgradeRequired             Status = 426
	PreconditionRequired        Status = 428
	TooManyRequests             Status = 429
	RequestHeaderFieldsTooLarge Status = 431
	UnavailableForLegalReasons  Status = 451

	// PayloadTooLarge is the pre-RFC 9110 name for 413.
	//
	// Deprecated: use ContentTooLarge.
	PayloadTooLarge Status = 413

	// RequestEntityTooLarge is the original RFC 2616 name for 413.
	//
	// Deprecated: use ContentTooLarge.
	RequestEntityTooLarge Status = 413

	// RequestURITooLong is the original RFC 2616 name for 414.
	//
	// Deprecated: use URITooLong.
	RequestURITooLong Status = 414

	// RequestedRangeNotSatisfiable is the original RFC 2616 name for 416.
	//
	// Deprecated: use RangeNotSatisfiable.
	RequestedRangeNotSatisfiable Status = 416
)

// 5xx server errors
const (
	InternalServerError           Status = 500
	NotImplemented                Status = 501
	BadGateway                    Status = 502
	ServiceUnavailable            Status = 503
	GatewayTimeout                Status = 504
	HTTPVersionNotSupported       Status = 505
	VariantAlsoNegotiates         Status = 506
	InsufficientStorage           Status = 507
	LoopDetected                  Status = 508
	NotExtended                   Status = 510
	NetworkAuthenticationRequired Status = 511
)

// titles holds exactly one canonical, non-deprecated title per code.
// Deprecated alias constants above share their code's entry, which is
// what gives reverse lookups their "prefer the non-deprecated name"
// behavior.
var titles = map[Status]string{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",
	Processing:         "Processing",
	EarlyHints:         "Early Hints",

	OK:                          "OK",
	Created:                     "Created",
	Accepted:                    "Accepted",
	NonAuthoritativeInformation: "Non-Authoritative Information",
	NoContent:                   "No Content",
	ResetContent:                "Reset Content",
	PartialContent:              "Partial Content",
	MultiStatus:                 "Multi-Status",
	AlreadyReported:             "Already Reported",
	IMUsed:                      "IM Used",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	UseProxy:          "Use Proxy",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:                  "Bad Request",
	Unauthorized:                "Unauthorized",
	PaymentRequired:             "Payment Required",
	Forbidden:                   "Forbidden",
	NotFound:                    "Not Found",
	MethodNotAllowed:            "Method Not Allowed",
	NotAcceptable:               "Not Acceptable",
	ProxyAuthenticationRequired: "Proxy Authentication Required",
	RequestTimeout:              "Request Timeout",
	Conflict:                    "Conflict",
	Gone:                        "Gone",
	LengthRequired:              "Length Required",
	PreconditionFailed:          "Precondition Failed",
	ContentTooLarge:             "Content Too Large",
	URITooLong:                  "URI Too Long",
	UnsupportedMediaType:        "Unsupported Media Type",
	RangeNotSatisfiable:         "Range Not Satisfiable",
	ExpectationFailed:           "Expectation Failed",
	IAmATeapot:                  "I'm a teapot",
	MisdirectedRequest:          "Misdirected Request",
	UnprocessableEntity:         "Unprocessable Entity",
	Locked:                      "Locked",
	FailedDependency:            "Failed Dependency",
	TooEarly:                    "Too Early",
	UpgradeRequired:             "Upgrade Required",
	PreconditionRequired:        "Precondition Required",
	TooManyRequests:             "Too Many Requests",
	RequestHeaderFieldsTooLarge: "Request Header Fields Too Large",
	UnavailableForLegalReasons:  "Unavailable For Legal Reasons",

	InternalServerError:           "Internal Server Error",
	NotImplemented:                "Not Implemented",
	BadGateway:                    "Bad Gateway",
	ServiceUnavailable:            "Service Unavailable",
	GatewayTimeout:                "Gateway Timeout",
	HTTPVersionNotSupported:       "HTTP Version Not Supported",
	VariantAlsoNegotiates:         "Variant Also Negotiates",
	InsufficientStorage:           "Insufficient Storage",
	LoopDetected:                  "Loop Detected",
	NotExtended:                   "Not Extended",
	NetworkAuthenticationRequired: "Network Authentication Required",
}
