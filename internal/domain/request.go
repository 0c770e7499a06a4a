package domain

// HTTPMethod represents an HTTP method (e.g., GET, POST).
type HTTPMethod string

const (
	MethodGet  HTTPMethod = "GET"
	MethodPost HTTPMethod = "POST"
)

// BodyType represents the type of payload for a request body.
type BodyType string

const (
	BodyNone      BodyType = "none"
	BodyMultipart BodyType = "multipart"
)

// Headers is a map representation of HTTP headers.
type Headers map[string]string

// FormField is a plain text part of a multipart body.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part of a multipart body. Content is read from Path when
// the request is built.
type FormFile struct {
	Name string
	Path string
}

// BodySpec describes an HTTP request body.
type BodySpec struct {
	Type   BodyType
	Fields []FormField
	Files  []FormFile
}

// RequestSpec is a transport-agnostic description of one HTTP exchange.
type RequestSpec struct {
	Name    string
	Method  HTTPMethod
	URL     string
	Headers Headers
	Body    BodySpec
}
