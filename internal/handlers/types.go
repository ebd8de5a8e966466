package handlers

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		URL  string `doc:"The URL to shorten"                                            example:"https://example.com/very/long/path" json:"url"            minLength:"1"`
		Code string `doc:"Custom code, 1-32 characters of 0-9, A-Z, a-z; generated when empty" example:"ex"                                json:"code,omitempty"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Location string `doc:"The short URL" header:"Location"`
	Body     struct {
		Code     string `doc:"The short code"     example:"abc123"                             json:"code"`
		ShortURL string `doc:"The full short URL" example:"http://localhost:8888/abc123"       json:"short_url"`
		URL      string `doc:"The original URL"   example:"https://example.com/very/long/path" json:"url"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc123" path:"code"`
}

// RedirectResponse is a permanent redirect to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The original URL" header:"Location"`
}
