package httpsclient

// MimeType describes a media type used for the Content-Type and Accept headers.
type MimeType string

const (
	MimeTypeJSON           MimeType = "application/json"
	MimeTypeFormURLEncoded MimeType = "application/x-www-form-urlencoded"
)

func (m MimeType) String() string {
	return string(m)
}
